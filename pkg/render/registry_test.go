package render_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-adminview/pkg/render"
	"github.com/goliatone/go-adminview/pkg/view"
)

type stubRenderer struct {
	name string
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/html; charset=utf-8" }
func (s stubRenderer) Render(_ context.Context, _ view.Page, _ render.Options) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := render.NewRegistry()

	if err := registry.Register(stubRenderer{name: "bootstrap"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	renderer, err := registry.Get("bootstrap")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if renderer.Name() != "bootstrap" {
		t.Fatalf("unexpected renderer %q", renderer.Name())
	}
	if !registry.Has("bootstrap") {
		t.Fatal("expected Has to report registered renderer")
	}
}

func TestRegistry_DuplicateName(t *testing.T) {
	registry := render.NewRegistry()
	if err := registry.Register(stubRenderer{name: "bootstrap"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	err := registry.Register(stubRenderer{name: "bootstrap"})
	if err == nil || !strings.Contains(err.Error(), "already registered") {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestRegistry_GetUnknown(t *testing.T) {
	registry := render.NewRegistry()
	if _, err := registry.Get("missing"); err == nil {
		t.Fatal("expected error for unknown renderer")
	}
}

func TestRegistry_ListSorted(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(stubRenderer{name: "zeta"})
	registry.MustRegister(stubRenderer{name: "alpha"})

	if diff := cmp.Diff([]string{"alpha", "zeta"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_RejectsNilAndUnnamed(t *testing.T) {
	registry := render.NewRegistry()
	if err := registry.Register(nil); err == nil {
		t.Fatal("expected error for nil renderer")
	}
	if err := registry.Register(stubRenderer{}); err == nil {
		t.Fatal("expected error for unnamed renderer")
	}
}
