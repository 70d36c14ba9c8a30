package bootstrap

import (
	"strings"
	"testing"

	"github.com/goliatone/go-adminview/pkg/view"
)

func TestRenderField_DefaultsToText(t *testing.T) {
	markup, err := renderField(view.Field{Name: "slug"}, "hello-world", nil)
	if err != nil {
		t.Fatalf("render field: %v", err)
	}
	if !strings.Contains(markup, `<input type="text"`) {
		t.Fatalf("expected text input for untyped field\n%s", markup)
	}
	if !strings.Contains(markup, `value="hello-world"`) {
		t.Fatalf("expected value attribute\n%s", markup)
	}
}

func TestRenderField_UnknownTypeErrors(t *testing.T) {
	_, err := renderField(view.Field{Name: "color", Type: "swatch"}, "", nil)
	if err == nil {
		t.Fatal("expected error for unknown input type")
	}
	if !strings.Contains(err.Error(), "swatch") {
		t.Fatalf("error should name the offending type: %v", err)
	}
}

func TestRenderField_HiddenRendersBare(t *testing.T) {
	markup, err := renderField(view.Field{Name: "next", Type: view.InputHidden}, "/admin", nil)
	if err != nil {
		t.Fatalf("render field: %v", err)
	}
	if strings.Contains(markup, "av-field") {
		t.Fatalf("hidden input must not render a field wrapper\n%s", markup)
	}
	if !strings.Contains(markup, `<input type="hidden" name="next" value="/admin">`) {
		t.Fatalf("unexpected hidden markup\n%s", markup)
	}
}

func TestRenderField_CheckboxValueOverride(t *testing.T) {
	field := view.Field{Name: "active", Type: view.InputCheckbox, Label: "Active", Checked: true}

	markup, err := renderField(field, "0", nil)
	if err != nil {
		t.Fatalf("render field: %v", err)
	}
	if strings.Contains(markup, " checked") {
		t.Fatalf("submitted value must override Checked\n%s", markup)
	}

	markup, err = renderField(field, "on", nil)
	if err != nil {
		t.Fatalf("render field: %v", err)
	}
	if !strings.Contains(markup, " checked") {
		t.Fatalf("expected checked attribute for submitted %q\n%s", "on", markup)
	}
}

func TestRenderField_SelectValueOverride(t *testing.T) {
	field := view.Field{Name: "tier", Type: view.InputSelect, Options: []view.Option{
		{Value: "free", Label: "Free", Selected: true},
		{Value: "pro", Label: "Pro"},
	}}

	markup, err := renderField(field, "pro", nil)
	if err != nil {
		t.Fatalf("render field: %v", err)
	}
	if !strings.Contains(markup, `<option value="pro" selected>`) {
		t.Fatalf("submitted value must win over Option.Selected\n%s", markup)
	}
	if strings.Contains(markup, `<option value="free" selected>`) {
		t.Fatalf("stale default selection must be cleared\n%s", markup)
	}
}

func TestRenderField_DisabledAndRequired(t *testing.T) {
	markup, err := renderField(view.Field{
		Name: "email", Type: view.InputEmail, Label: "Email",
		Required: true, Disabled: true,
	}, "", nil)
	if err != nil {
		t.Fatalf("render field: %v", err)
	}
	if !strings.Contains(markup, " required") || !strings.Contains(markup, " disabled") {
		t.Fatalf("expected required and disabled attributes\n%s", markup)
	}
}

func TestRenderField_DescriptionMarkdown(t *testing.T) {
	markup, err := renderField(view.Field{
		Name: "handle", Type: view.InputText,
		Description: "Your **public** handle",
	}, "", nil)
	if err != nil {
		t.Fatalf("render field: %v", err)
	}
	if !strings.Contains(markup, "<strong>public</strong>") {
		t.Fatalf("description markdown should render inline\n%s", markup)
	}
	if !strings.Contains(markup, `class="form-text text-muted"`) {
		t.Fatalf("expected help text wrapper\n%s", markup)
	}
}

func TestRenderField_EscapesUserText(t *testing.T) {
	markup, err := renderField(view.Field{
		Name: "bio", Type: view.InputTextarea, Label: "<Bio>",
	}, "<script>alert(1)</script>", nil)
	if err != nil {
		t.Fatalf("render field: %v", err)
	}
	if strings.Contains(markup, "<script>") {
		t.Fatalf("value must be escaped\n%s", markup)
	}
	if !strings.Contains(markup, "&lt;Bio&gt;") {
		t.Fatalf("label must be escaped\n%s", markup)
	}
}
