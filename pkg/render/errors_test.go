package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-adminview/pkg/render"
	"github.com/goliatone/go-adminview/pkg/view"
)

func testForm() view.Form {
	return view.Form{
		Action: "/admin/articles/new",
		Method: "POST",
		Fields: []view.Field{
			{Name: "title", Type: view.InputText},
			{Name: "body", Type: view.InputTextarea},
		},
	}
}

func TestMapErrorPayload_FieldAndFormLevel(t *testing.T) {
	mapping := render.MapErrorPayload(testForm(), map[string][]string{
		"title":      {"required", "required", "  too short  "},
		"__all__":    {"save failed"},
		"unknownKey": {"stray message"},
	})

	wantFields := map[string][]string{
		"title": {"required", "too short"},
	}
	if diff := cmp.Diff(wantFields, mapping.Fields); diff != "" {
		t.Fatalf("field errors mismatch (-want +got):\n%s", diff)
	}

	wantForm := map[string]struct{}{"save failed": {}, "stray message": {}}
	if len(mapping.Form) != len(wantForm) {
		t.Fatalf("form errors = %v, want 2 messages", mapping.Form)
	}
	for _, msg := range mapping.Form {
		if _, ok := wantForm[msg]; !ok {
			t.Fatalf("unexpected form-level message %q", msg)
		}
	}
}

func TestMapErrorPayload_Empty(t *testing.T) {
	mapping := render.MapErrorPayload(testForm(), nil)
	if mapping.Fields != nil || mapping.Form != nil {
		t.Fatalf("expected empty mapping, got %+v", mapping)
	}
}

func TestMapErrorPayload_BlankMessagesDropped(t *testing.T) {
	mapping := render.MapErrorPayload(testForm(), map[string][]string{
		"body": {"", "   "},
	})
	if mapping.Fields != nil {
		t.Fatalf("expected no field errors, got %+v", mapping.Fields)
	}
}
