// Package schema scaffolds view models from OpenAPI documents: the request
// body of an operation becomes a view.Form, so admin screens can be derived
// from the same contract the API serves.
package schema

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-adminview/pkg/view"
)

// ErrOperationNotFound reports a lookup for an operationId the document does
// not define.
var ErrOperationNotFound = errors.New("schema: operation not found")

// Extension keys honoured during conversion.
const (
	extHidden = "x-hidden"
	extWidget = "x-widget"
)

// Adapter wraps a parsed OpenAPI document.
type Adapter struct {
	doc *openapi3.T
}

// Load parses an OpenAPI document from raw JSON or YAML bytes.
func Load(ctx context.Context, data []byte) (*Adapter, error) {
	if len(data) == 0 {
		return nil, errors.New("schema: document payload is empty")
	}
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("schema: load document: %w", err)
	}
	return &Adapter{doc: doc}, nil
}

// LoadFile parses an OpenAPI document from disk.
func LoadFile(ctx context.Context, path string) (*Adapter, error) {
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("schema: load %s: %w", path, err)
	}
	return &Adapter{doc: doc}, nil
}

// Operations returns the ids of operations that carry a request body, sorted
// alphabetically.
func (a *Adapter) Operations() []string {
	if a == nil || a.doc == nil || a.doc.Paths == nil {
		return nil
	}
	var ids []string
	for path, item := range a.doc.Paths.Map() {
		if item == nil {
			continue
		}
		for method, op := range item.Operations() {
			if op == nil || op.RequestBody == nil {
				continue
			}
			id := op.OperationID
			if id == "" {
				id = strings.ToLower(method) + ":" + path
			}
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Form derives a view.Form from the request schema of the operation with the
// given id. The form action is the operation's path and the method its HTTP
// verb.
func (a *Adapter) Form(opID string) (view.Form, error) {
	if a == nil || a.doc == nil || a.doc.Paths == nil {
		return view.Form{}, ErrOperationNotFound
	}

	for path, item := range a.doc.Paths.Map() {
		if item == nil {
			continue
		}
		for method, op := range item.Operations() {
			if op == nil {
				continue
			}
			id := op.OperationID
			if id == "" {
				id = strings.ToLower(method) + ":" + path
			}
			if id != opID {
				continue
			}
			return buildForm(id, method, path, op)
		}
	}
	return view.Form{}, fmt.Errorf("schema: %w: %q", ErrOperationNotFound, opID)
}

func buildForm(id, method, path string, op *openapi3.Operation) (view.Form, error) {
	body := requestSchema(op.RequestBody)
	if body == nil {
		return view.Form{}, fmt.Errorf("schema: operation %q has no usable request schema", id)
	}

	required := make(map[string]bool, len(body.Required))
	for _, name := range body.Required {
		required[name] = true
	}

	names := make([]string, 0, len(body.Properties))
	for name := range body.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]view.Field, 0, len(names))
	for _, name := range names {
		ref := body.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		field, err := buildField(name, ref.Value, required[name])
		if err != nil {
			return view.Form{}, fmt.Errorf("schema: operation %q: %w", id, err)
		}
		fields = append(fields, field)
	}

	return view.Form{
		Name:   id,
		Action: path,
		Method: strings.ToUpper(method),
		Fields: fields,
	}, nil
}

func requestSchema(ref *openapi3.RequestBodyRef) *openapi3.Schema {
	if ref == nil || ref.Value == nil {
		return nil
	}
	content := ref.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil && mt.Schema.Value != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt.Schema != nil && mt.Schema.Value != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

func buildField(name string, prop *openapi3.Schema, required bool) (view.Field, error) {
	field := view.Field{
		Name:        name,
		Label:       view.Humanize(name),
		Description: prop.Description,
		Required:    required,
	}

	if hidden, _ := prop.Extensions[extHidden].(bool); hidden {
		field.Type = view.InputHidden
		if prop.Default != nil {
			field.Value = fmt.Sprint(prop.Default)
		}
		return field, nil
	}

	if len(prop.Enum) > 0 {
		field.Type = view.InputSelect
		field.Options = enumOptions(prop.Enum, prop.Default)
		return field, nil
	}

	inputType, err := inputTypeFor(name, prop)
	if err != nil {
		return view.Field{}, err
	}
	field.Type = inputType

	if prop.Default != nil {
		if field.Type == view.InputCheckbox {
			field.Checked, _ = prop.Default.(bool)
		} else {
			field.Value = fmt.Sprint(prop.Default)
		}
	}
	if widget, _ := prop.Extensions[extWidget].(string); widget != "" {
		field.Metadata = map[string]string{"widget": widget}
	}
	return field, nil
}

func inputTypeFor(name string, prop *openapi3.Schema) (view.InputType, error) {
	switch schemaType(prop.Type) {
	case "boolean":
		return view.InputCheckbox, nil
	case "integer", "number":
		return view.InputNumber, nil
	case "string", "":
		return stringInputType(prop.Format), nil
	default:
		return "", fmt.Errorf("unsupported property type %q for %q", schemaType(prop.Type), name)
	}
}

func stringInputType(format string) view.InputType {
	switch strings.ToLower(format) {
	case "password":
		return view.InputPassword
	case "email":
		return view.InputEmail
	case "uri", "url":
		return view.InputURL
	case "date":
		return view.InputDate
	case "date-time":
		return view.InputDateTime
	case "binary", "byte":
		return view.InputFile
	case "textarea", "markdown":
		return view.InputTextarea
	default:
		return view.InputText
	}
}

func enumOptions(enum []any, def any) []view.Option {
	options := make([]view.Option, 0, len(enum))
	for _, entry := range enum {
		value := fmt.Sprint(entry)
		options = append(options, view.Option{
			Value:    value,
			Label:    view.Humanize(value),
			Selected: def != nil && fmt.Sprint(def) == value,
		})
	}
	return options
}

func schemaType(types *openapi3.Types) string {
	if types == nil || len(*types) == 0 {
		return ""
	}
	return (*types)[0]
}
