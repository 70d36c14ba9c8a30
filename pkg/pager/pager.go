// Package pager computes bounded page-number windows and link descriptors
// for list-view navigation controls. It is pure presentation math: callers
// supply the current page, the total page count, and a URL generator, and
// receive an ordered set of link descriptors ready for rendering.
package pager

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidPage reports a precondition violation on page/pages inputs.
// Callers passing out-of-range values have a bug upstream; the pager fails
// fast instead of clamping so the bug is not masked.
var ErrInvalidPage = errors.New("pager: page out of range")

// Labels used for the boundary links. Display templates may translate the
// accompanying titles; the glyphs themselves are locale-neutral.
const (
	LabelFirst = "«"
	LabelPrev  = "<"
	LabelNext  = ">"
	LabelLast  = "»"
)

// LinkGenerator maps a zero-based page index to a navigable URL. It must be
// pure; the pager calls it once per enabled link.
type LinkGenerator func(page int) string

// Link is a single navigation control in display order. Disabled links carry
// an empty URL. Active marks the window entry for the current page.
type Link struct {
	Label   string `json:"label"`
	URL     string `json:"url,omitempty"`
	Enabled bool   `json:"enabled"`
	Active  bool   `json:"active"`
}

// Nav is the full navigation structure: first, previous, the numbered
// window, next, last. Min and Max describe the half-open window [Min, Max).
type Nav struct {
	Links []Link `json:"links"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
}

// Empty reports whether there is nothing to render. A pager over zero or one
// pages shows no navigation at all.
func (n Nav) Empty() bool {
	return len(n.Links) == 0
}

// Window computes the half-open range [min, max) of page indices to display
// around page. The candidate window is three slots either side of the
// current page; a deficit on the left grows the window on the right before
// the right edge is checked, and vice versa, so page counts barely larger
// than the window still clip both ends correctly. The compensation order
// (left, then right, then clamp) is load-bearing.
func Window(page, pages int) (min, max int) {
	min = page - 3
	max = page + 4

	if min < 0 {
		max -= min
		min = 0
	}
	if max > pages {
		min -= max - pages
		max = pages
	}
	if min < 0 {
		min = 0
	}
	return min, max
}

// New builds the windowed navigation for page within pages total pages.
// Pages of zero or one produce an empty Nav. Negative inputs, or a page at
// or past the total, return ErrInvalidPage.
func New(page, pages int, gen LinkGenerator) (Nav, error) {
	if pages < 0 {
		return Nav{}, fmt.Errorf("%w: pages %d is negative", ErrInvalidPage, pages)
	}
	if page < 0 {
		return Nav{}, fmt.Errorf("%w: page %d is negative", ErrInvalidPage, page)
	}
	if pages > 0 && page >= pages {
		return Nav{}, fmt.Errorf("%w: page %d of %d", ErrInvalidPage, page, pages)
	}
	if gen == nil {
		return Nav{}, errors.New("pager: link generator is required")
	}
	if pages <= 1 {
		return Nav{}, nil
	}

	min, max := Window(page, pages)

	links := make([]Link, 0, max-min+4)
	links = append(links,
		boundaryLink(LabelFirst, 0, min > 0, gen),
		boundaryLink(LabelPrev, page-1, page > 0, gen),
	)
	for i := min; i < max; i++ {
		links = append(links, Link{
			Label:   strconv.Itoa(i + 1),
			URL:     gen(i),
			Enabled: true,
			Active:  i == page,
		})
	}
	links = append(links,
		boundaryLink(LabelNext, page+1, page+1 < pages, gen),
		boundaryLink(LabelLast, pages-1, max < pages, gen),
	)

	return Nav{Links: links, Min: min, Max: max}, nil
}

func boundaryLink(label string, target int, enabled bool, gen LinkGenerator) Link {
	link := Link{Label: label, Enabled: enabled}
	if enabled {
		link.URL = gen(target)
	}
	return link
}
