// Package template defines the engine seam renderers depend on, mirroring
// the github.com/goliatone/go-template contract so engines can be swapped
// without touching render logic.
package template

import (
	"io"
)

// TemplateRenderer is the engine contract. RenderTemplate resolves a named
// template from the configured source; RenderString parses ad-hoc content.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
