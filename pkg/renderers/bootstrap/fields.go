package bootstrap

import (
	"fmt"
	"html"
	"strings"

	"github.com/goliatone/go-adminview/pkg/richtext"
	"github.com/goliatone/go-adminview/pkg/view"
)

// controlID derives the DOM id for a field control.
func controlID(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	return "av-" + trimmed
}

// renderField produces the complete markup for one form field: wrapper,
// label, control, inline errors, and help text. Hidden inputs render bare.
func renderField(field view.Field, value string, errors []string) (string, error) {
	if field.Type == view.InputHidden {
		return hiddenInput(field.Name, value), nil
	}

	control, err := renderControl(field, value, len(errors) > 0)
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	builder.Grow(len(control) + 256)

	builder.WriteString(`<div class="` + string(ClassFieldGroup) + ` mb-3" data-field="`)
	builder.WriteString(html.EscapeString(field.Name))
	builder.WriteString("\">\n")

	if field.Type != view.InputCheckbox && strings.TrimSpace(field.Label) != "" {
		builder.WriteString(`    <label class="form-label" for="`)
		builder.WriteString(controlID(field.Name))
		builder.WriteString(`">`)
		builder.WriteString(html.EscapeString(field.Label))
		if field.Required {
			builder.WriteString(` <span class="text-danger">*</span>`)
		}
		builder.WriteString("</label>\n")
	}

	for _, line := range strings.Split(control, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		builder.WriteString("    ")
		builder.WriteString(line)
		builder.WriteByte('\n')
	}

	for _, msg := range errors {
		builder.WriteString(`    <div class="invalid-feedback d-block">`)
		builder.WriteString(html.EscapeString(msg))
		builder.WriteString("</div>\n")
	}

	if desc := strings.TrimSpace(field.Description); desc != "" {
		help, err := richtext.RenderInline(desc)
		if err != nil {
			return "", fmt.Errorf("bootstrap: render help text for field %q: %w", field.Name, err)
		}
		if help != "" {
			builder.WriteString(`    <small class="form-text text-muted">`)
			builder.WriteString(help)
			builder.WriteString("</small>\n")
		}
	}

	builder.WriteString("</div>\n")
	return builder.String(), nil
}

func renderControl(field view.Field, value string, invalid bool) (string, error) {
	switch field.Type {
	case view.InputCheckbox:
		return checkboxControl(field, value, invalid), nil
	case view.InputSelect:
		return selectControl(field, value, invalid), nil
	case view.InputTextarea:
		return textareaControl(field, value, invalid), nil
	case view.InputFile:
		return fileControl(field, invalid), nil
	case view.InputText, view.InputPassword, view.InputNumber,
		view.InputDate, view.InputDateTime, view.InputEmail, view.InputURL:
		return inputControl(field, value, invalid), nil
	case "":
		return inputControl(withType(field, view.InputText), value, invalid), nil
	default:
		return "", fmt.Errorf("bootstrap: unsupported input type %q for field %q", field.Type, field.Name)
	}
}

func withType(field view.Field, t view.InputType) view.Field {
	field.Type = t
	return field
}

func inputControl(field view.Field, value string, invalid bool) string {
	var builder strings.Builder
	builder.WriteString(`<input type="`)
	builder.WriteString(string(field.Type))
	builder.WriteString(`" class="form-control`)
	if invalid {
		builder.WriteString(" is-invalid")
	}
	builder.WriteString(`" id="`)
	builder.WriteString(controlID(field.Name))
	builder.WriteString(`" name="`)
	builder.WriteString(html.EscapeString(field.Name))
	builder.WriteString(`"`)
	if value != "" {
		builder.WriteString(` value="` + html.EscapeString(value) + `"`)
	}
	if field.Placeholder != "" {
		builder.WriteString(` placeholder="` + html.EscapeString(field.Placeholder) + `"`)
	}
	writeCommonAttrs(&builder, field)
	builder.WriteString(">")
	return builder.String()
}

func textareaControl(field view.Field, value string, invalid bool) string {
	var builder strings.Builder
	builder.WriteString(`<textarea class="form-control`)
	if invalid {
		builder.WriteString(" is-invalid")
	}
	builder.WriteString(`" id="`)
	builder.WriteString(controlID(field.Name))
	builder.WriteString(`" name="`)
	builder.WriteString(html.EscapeString(field.Name))
	builder.WriteString(`" rows="4"`)
	if field.Placeholder != "" {
		builder.WriteString(` placeholder="` + html.EscapeString(field.Placeholder) + `"`)
	}
	writeCommonAttrs(&builder, field)
	builder.WriteString(">")
	builder.WriteString(html.EscapeString(value))
	builder.WriteString("</textarea>")
	return builder.String()
}

func checkboxControl(field view.Field, value string, invalid bool) string {
	checked := field.Checked
	if value != "" {
		checked = value == "true" || value == "1" || value == "on"
	}

	var builder strings.Builder
	builder.WriteString(`<div class="form-check">` + "\n")
	builder.WriteString(`  <input type="checkbox" class="form-check-input`)
	if invalid {
		builder.WriteString(" is-invalid")
	}
	builder.WriteString(`" id="`)
	builder.WriteString(controlID(field.Name))
	builder.WriteString(`" name="`)
	builder.WriteString(html.EscapeString(field.Name))
	builder.WriteString(`" value="1"`)
	if checked {
		builder.WriteString(" checked")
	}
	writeCommonAttrs(&builder, field)
	builder.WriteString(">\n")
	if strings.TrimSpace(field.Label) != "" {
		builder.WriteString(`  <label class="form-check-label" for="`)
		builder.WriteString(controlID(field.Name))
		builder.WriteString(`">`)
		builder.WriteString(html.EscapeString(field.Label))
		builder.WriteString("</label>\n")
	}
	builder.WriteString("</div>")
	return builder.String()
}

func selectControl(field view.Field, value string, invalid bool) string {
	var builder strings.Builder
	builder.WriteString(`<select class="form-select`)
	if invalid {
		builder.WriteString(" is-invalid")
	}
	builder.WriteString(`" id="`)
	builder.WriteString(controlID(field.Name))
	builder.WriteString(`" name="`)
	builder.WriteString(html.EscapeString(field.Name))
	builder.WriteString(`"`)
	writeCommonAttrs(&builder, field)
	builder.WriteString(">\n")
	for _, option := range field.Options {
		selected := option.Selected
		if value != "" {
			selected = option.Value == value
		}
		builder.WriteString(`  <option value="`)
		builder.WriteString(html.EscapeString(option.Value))
		builder.WriteString(`"`)
		if selected {
			builder.WriteString(" selected")
		}
		builder.WriteString(">")
		builder.WriteString(html.EscapeString(option.Label))
		builder.WriteString("</option>\n")
	}
	builder.WriteString("</select>")
	return builder.String()
}

func fileControl(field view.Field, invalid bool) string {
	var builder strings.Builder
	builder.WriteString(`<input type="file" class="form-control`)
	if invalid {
		builder.WriteString(" is-invalid")
	}
	builder.WriteString(`" id="`)
	builder.WriteString(controlID(field.Name))
	builder.WriteString(`" name="`)
	builder.WriteString(html.EscapeString(field.Name))
	builder.WriteString(`"`)
	writeCommonAttrs(&builder, field)
	builder.WriteString(">")
	return builder.String()
}

func hiddenInput(name, value string) string {
	return `<input type="hidden" name="` + html.EscapeString(name) +
		`" value="` + html.EscapeString(value) + `">` + "\n"
}

func writeCommonAttrs(builder *strings.Builder, field view.Field) {
	if field.Required {
		builder.WriteString(" required")
	}
	if field.Disabled {
		builder.WriteString(" disabled")
	}
}
