// Package adminview renders administrative UI building blocks: windowed
// pagination, forms, list tables, and modal dialogs. View models live in
// pkg/view, pagination in pkg/pager, and HTML output in pkg/renderers;
// this package re-exports the common surface and offers one-shot helpers.
package adminview

import (
	"context"
	"fmt"
	"io/fs"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-adminview/pkg/pager"
	"github.com/goliatone/go-adminview/pkg/render"
	"github.com/goliatone/go-adminview/pkg/renderers/bootstrap"
	"github.com/goliatone/go-adminview/pkg/view"
)

// Options describes per-request render overrides: CSRF token, submitted
// values, validation errors, locale, and theme configuration.
type Options = render.Options

// Page aggregates the sections rendered into one admin screen.
type Page = view.Page

// Form is the view model for a single admin form.
type Form = view.Form

// Field is one form control.
type Field = view.Field

// List is the view model for a paginated table.
type List = view.List

// Modal is the view model for a dialog plus its trigger.
type Modal = view.Modal

// Nav is a resolved pagination control.
type Nav = pager.Nav

// Link is one pagination link descriptor.
type Link = pager.Link

// NewPager builds the windowed pagination control for the current page.
func NewPager(page, pages int, gen pager.LinkGenerator) (Nav, error) {
	return pager.New(page, pages, gen)
}

// NewSimplePager builds a prev/next control for result sets without a known
// total.
func NewSimplePager(page int, haveNext bool, gen pager.LinkGenerator) (Nav, error) {
	return pager.Simple(page, haveNext, gen)
}

// RenderHTML renders a page with the built-in bootstrap renderer. It is the
// simplest entry point for callers that just want HTML output.
func RenderHTML(ctx context.Context, page Page, opts Options, options ...bootstrap.Option) ([]byte, error) {
	renderer, err := bootstrap.New(options...)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, page, opts)
}

// EmbeddedTemplates exposes the built-in renderer templates so callers can
// reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return bootstrap.TemplatesFS()
}

// EmbeddedAssets exposes the built-in stylesheet bundle for serving over
// HTTP or copying into an asset pipeline.
func EmbeddedAssets() fs.FS {
	return bootstrap.AssetsFS()
}

// ResolveTheme resolves a theme/variant through a go-theme selector and
// derives the render configuration: template partials, CSS custom
// properties, and asset URLs.
func ResolveTheme(selector theme.ThemeSelector, name, variant string, fallbacks map[string]string) (*render.ThemeConfig, error) {
	if selector == nil {
		return nil, fmt.Errorf("adminview: theme selector is nil")
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("adminview: select theme %q/%q: %w", name, variant, err)
	}
	return render.BuildThemeConfig(selection, fallbacks), nil
}

// WithTheme resolves a theme selection and returns a copy of the options
// carrying the derived configuration.
func WithTheme(opts Options, selector theme.ThemeSelector, name, variant string) (Options, error) {
	cfg, err := ResolveTheme(selector, name, variant, nil)
	if err != nil {
		return opts, err
	}
	opts.Theme = cfg
	return opts, nil
}
