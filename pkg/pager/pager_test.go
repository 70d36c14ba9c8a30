package pager_test

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-adminview/pkg/pager"
)

func pageURL(page int) string {
	return fmt.Sprintf("/admin/items?page=%d", page)
}

func TestWindow(t *testing.T) {
	cases := []struct {
		name    string
		page    int
		pages   int
		wantMin int
		wantMax int
	}{
		{name: "first page", page: 0, pages: 10, wantMin: 0, wantMax: 7},
		{name: "last page", page: 9, pages: 10, wantMin: 3, wantMax: 10},
		{name: "centered", page: 5, pages: 10, wantMin: 2, wantMax: 9},
		{name: "near left edge", page: 1, pages: 10, wantMin: 0, wantMax: 7},
		{name: "near right edge", page: 8, pages: 10, wantMin: 3, wantMax: 10},
		{name: "window spans everything", page: 1, pages: 3, wantMin: 0, wantMax: 3},
		{name: "single page", page: 0, pages: 1, wantMin: 0, wantMax: 1},
		{name: "exactly window sized", page: 3, pages: 7, wantMin: 0, wantMax: 7},
		{name: "one more than window", page: 0, pages: 8, wantMin: 0, wantMax: 7},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			min, max := pager.Window(tc.page, tc.pages)
			if min != tc.wantMin || max != tc.wantMax {
				t.Fatalf("window(%d, %d) = [%d, %d), want [%d, %d)",
					tc.page, tc.pages, min, max, tc.wantMin, tc.wantMax)
			}
		})
	}
}

func TestWindow_Properties(t *testing.T) {
	for pages := 1; pages <= 40; pages++ {
		for page := 0; page < pages; page++ {
			min, max := pager.Window(page, pages)
			if min < 0 || min > max || max > pages {
				t.Fatalf("window(%d, %d) = [%d, %d) violates bounds", page, pages, min, max)
			}
			want := pages
			if want > 7 {
				want = 7
			}
			if max-min != want {
				t.Fatalf("window(%d, %d) size = %d, want %d", page, pages, max-min, want)
			}
			if page < min || page >= max {
				t.Fatalf("window(%d, %d) = [%d, %d) does not contain current page", page, pages, min, max)
			}
		}
	}
}

func TestNew_LinkStates(t *testing.T) {
	nav, err := pager.New(9, 10, pageURL)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	first := nav.Links[0]
	if !first.Enabled || first.URL != pageURL(0) {
		t.Fatalf("expected enabled first link to page 0, got %+v", first)
	}
	prev := nav.Links[1]
	if !prev.Enabled || prev.URL != pageURL(8) {
		t.Fatalf("expected enabled prev link to page 8, got %+v", prev)
	}

	next := nav.Links[len(nav.Links)-2]
	if next.Enabled {
		t.Fatalf("expected next disabled on last page, got %+v", next)
	}
	last := nav.Links[len(nav.Links)-1]
	if last.Enabled {
		t.Fatalf("expected last disabled when window reaches the end, got %+v", last)
	}
	if next.URL != "" || last.URL != "" {
		t.Fatalf("disabled links must carry no URL: next=%q last=%q", next.URL, last.URL)
	}
}

func TestNew_WindowSpansAllPages(t *testing.T) {
	nav, err := pager.New(1, 3, pageURL)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if nav.Min != 0 || nav.Max != 3 {
		t.Fatalf("window = [%d, %d), want [0, 3)", nav.Min, nav.Max)
	}
	if nav.Links[0].Enabled {
		t.Fatalf("first link should be disabled when window starts at 0")
	}
	if nav.Links[len(nav.Links)-1].Enabled {
		t.Fatalf("last link should be disabled when window reaches the end")
	}
	if !nav.Links[1].Enabled {
		t.Fatalf("prev link should be enabled on page 1")
	}
	if !nav.Links[len(nav.Links)-2].Enabled {
		t.Fatalf("next link should be enabled on page 1 of 3")
	}
}

func TestNew_DescriptorOrder(t *testing.T) {
	nav, err := pager.New(0, 10, pageURL)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	want := []pager.Link{
		{Label: "«", Enabled: false},
		{Label: "<", Enabled: false},
		{Label: "1", URL: pageURL(0), Enabled: true, Active: true},
		{Label: "2", URL: pageURL(1), Enabled: true},
		{Label: "3", URL: pageURL(2), Enabled: true},
		{Label: "4", URL: pageURL(3), Enabled: true},
		{Label: "5", URL: pageURL(4), Enabled: true},
		{Label: "6", URL: pageURL(5), Enabled: true},
		{Label: "7", URL: pageURL(6), Enabled: true},
		{Label: ">", URL: pageURL(1), Enabled: true},
		{Label: "»", URL: pageURL(9), Enabled: true},
	}
	if diff := cmp.Diff(want, nav.Links); diff != "" {
		t.Fatalf("links mismatch (-want +got):\n%s", diff)
	}
}

func TestNew_ActiveLink(t *testing.T) {
	nav, err := pager.New(5, 10, pageURL)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	var active []string
	for _, link := range nav.Links {
		if link.Active {
			active = append(active, link.Label)
		}
	}
	if len(active) != 1 || active[0] != strconv.Itoa(6) {
		t.Fatalf("expected exactly one active link labelled 6, got %v", active)
	}
}

func TestNew_Degenerate(t *testing.T) {
	for _, pages := range []int{0, 1} {
		nav, err := pager.New(0, pages, pageURL)
		if err != nil {
			t.Fatalf("new with %d pages: %v", pages, err)
		}
		if !nav.Empty() {
			t.Fatalf("expected empty nav for %d pages, got %d links", pages, len(nav.Links))
		}
	}
}

func TestNew_PreconditionViolations(t *testing.T) {
	cases := []struct {
		name  string
		page  int
		pages int
	}{
		{name: "negative pages", page: 0, pages: -1},
		{name: "negative page", page: -1, pages: 10},
		{name: "page past total", page: 10, pages: 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pager.New(tc.page, tc.pages, pageURL)
			if !errors.Is(err, pager.ErrInvalidPage) {
				t.Fatalf("expected ErrInvalidPage, got %v", err)
			}
		})
	}
}

func TestNew_NilGenerator(t *testing.T) {
	if _, err := pager.New(0, 10, nil); err == nil {
		t.Fatal("expected error for nil generator")
	}
}
