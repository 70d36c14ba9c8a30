package render

import (
	"context"

	"github.com/goliatone/go-adminview/pkg/view"
)

// Renderer converts a view.Page into a byte representation (an HTML
// fragment, a JSON snapshot for tooling, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, page view.Page, opts Options) ([]byte, error)
}
