package widgets

import (
	"testing"

	"github.com/goliatone/go-adminview/pkg/view"
)

func TestResolve_ExplicitWidgetWins(t *testing.T) {
	reg := NewRegistry()
	field := view.Field{
		Type: view.InputCheckbox,
		Metadata: map[string]string{
			"admin.widget": "custom-toggle",
		},
	}

	if got, ok := reg.Resolve(field); !ok || got != "custom-toggle" {
		t.Fatalf("expected explicit widget to win, got %q (ok=%v)", got, ok)
	}
}

func TestResolve_Builtins(t *testing.T) {
	reg := NewRegistry()

	cases := []struct {
		name   string
		field  view.Field
		expect string
	}{
		{
			name:   "checkbox toggle",
			field:  view.Field{Type: view.InputCheckbox},
			expect: WidgetToggle,
		},
		{
			name:   "select control",
			field:  view.Field{Type: view.InputSelect},
			expect: WidgetSelect,
		},
		{
			name: "text with options",
			field: view.Field{
				Type:    view.InputText,
				Options: []view.Option{{Value: "a", Label: "A"}},
			},
			expect: WidgetSelect,
		},
		{
			name:   "date picker",
			field:  view.Field{Type: view.InputDate},
			expect: WidgetDatePicker,
		},
		{
			name:   "datetime picker",
			field:  view.Field{Type: view.InputDateTime},
			expect: WidgetDatePicker,
		},
		{
			name: "markdown editor",
			field: view.Field{
				Type:     view.InputTextarea,
				Metadata: map[string]string{"format": "markdown"},
			},
			expect: WidgetMarkdown,
		},
		{
			name:   "file upload",
			field:  view.Field{Type: view.InputFile},
			expect: WidgetFileUpload,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := reg.Resolve(tc.field)
			if !ok {
				t.Fatalf("expected resolution for %s", tc.name)
			}
			if got != tc.expect {
				t.Fatalf("resolve %s: want %q, got %q", tc.name, tc.expect, got)
			}
		})
	}
}

func TestResolve_NoMatch(t *testing.T) {
	reg := NewRegistry()
	if got, ok := reg.Resolve(view.Field{Type: view.InputText}); ok {
		t.Fatalf("plain text field should not resolve, got %q", got)
	}
}

func TestResolve_PriorityOverride(t *testing.T) {
	reg := NewRegistry()
	reg.Register("custom", 999, func(field view.Field) bool {
		return field.Type == view.InputCheckbox
	})

	got, ok := reg.Resolve(view.Field{Type: view.InputCheckbox})
	if !ok || got != "custom" {
		t.Fatalf("priority matcher should win, got %q (ok=%v)", got, ok)
	}
}

func TestDecorate_AppliesWidgetHints(t *testing.T) {
	reg := NewRegistry()

	form := view.Form{
		Fields: []view.Field{
			{Name: "enabled", Type: view.InputCheckbox},
			{Name: "starts_at", Type: view.InputDate},
			{Name: "title", Type: view.InputText},
		},
	}

	if err := reg.Decorate(&form); err != nil {
		t.Fatalf("decorate: %v", err)
	}

	byName := func(name string) view.Field {
		for _, f := range form.Fields {
			if f.Name == name {
				return f
			}
		}
		t.Fatalf("field %q not found", name)
		return view.Field{}
	}

	if got := byName("enabled").Metadata["widget"]; got != WidgetToggle {
		t.Fatalf("enabled widget not applied: %q", got)
	}
	if got := byName("starts_at").Metadata["widget"]; got != WidgetDatePicker {
		t.Fatalf("starts_at widget not applied: %q", got)
	}
	if byName("title").Metadata != nil {
		t.Fatalf("unmatched field must stay undecorated: %v", byName("title").Metadata)
	}
}

func TestDecorate_PreservesExistingHint(t *testing.T) {
	reg := NewRegistry()
	form := view.Form{
		Fields: []view.Field{{
			Name:     "enabled",
			Type:     view.InputCheckbox,
			Metadata: map[string]string{"widget": "fancy-switch"},
		}},
	}

	if err := reg.Decorate(&form); err != nil {
		t.Fatalf("decorate: %v", err)
	}
	if got := form.Fields[0].Metadata["widget"]; got != "fancy-switch" {
		t.Fatalf("existing hint must be preserved, got %q", got)
	}
}
