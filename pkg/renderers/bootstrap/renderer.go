// Package bootstrap renders view-models into Bootstrap-flavoured HTML
// fragments: paginated list views, forms, and modal windows, plus the
// stylesheet/script tags they depend on.
package bootstrap

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-adminview/pkg/pager"
	"github.com/goliatone/go-adminview/pkg/render"
	rendertemplate "github.com/goliatone/go-adminview/pkg/render/template"
	"github.com/goliatone/go-adminview/pkg/render/template/pongo2tpl"
	"github.com/goliatone/go-adminview/pkg/view"
)

const (
	pageTemplate  = "templates/page.tmpl"
	formTemplate  = "templates/form.tmpl"
	listTemplate  = "templates/list.tmpl"
	pagerTemplate = "templates/pager.tmpl"
)

// Option configures the renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	stylesheets      []string
	scripts          []Script
	defaultStyles    bool
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithStylesheet registers a stylesheet href emitted on every page.
func WithStylesheet(href string) Option {
	return func(cfg *config) {
		if strings.TrimSpace(href) != "" {
			cfg.stylesheets = append(cfg.stylesheets, href)
		}
	}
}

// WithScript registers a script emitted on every page.
func WithScript(script Script) Option {
	return func(cfg *config) {
		cfg.scripts = append(cfg.scripts, script)
	}
}

// WithDefaultStyles inlines the embedded stylesheet into rendered pages so
// output is presentable without an asset pipeline.
func WithDefaultStyles() Option {
	return func(cfg *config) {
		cfg.defaultStyles = true
	}
}

// Renderer implements render.Renderer over the embedded pongo2 templates.
type Renderer struct {
	templates     rendertemplate.TemplateRenderer
	stylesheets   []string
	scripts       []Script
	defaultStyles bool
}

// New constructs the bootstrap renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := pongo2tpl.New(
			pongo2tpl.WithFS(cfg.templateFS),
			pongo2tpl.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("bootstrap renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates:     renderer,
		stylesheets:   cfg.stylesheets,
		scripts:       cfg.scripts,
		defaultStyles: cfg.defaultStyles,
	}, nil
}

func (r *Renderer) Name() string {
	return "bootstrap"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the markup for every populated section of the page, in
// declaration order, wrapped in the page scaffold with asset tags emitted
// exactly once.
func (r *Renderer) Render(_ context.Context, page view.Page, opts render.Options) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("bootstrap renderer: template renderer is nil")
	}

	assets := newAssetSet()
	for _, href := range r.stylesheets {
		assets.addStylesheet(href)
	}
	if opts.Theme != nil {
		if href := opts.Theme.Stylesheet(); href != "" {
			assets.addStylesheet(href)
		}
	}
	for _, script := range r.scripts {
		assets.addScript(script)
	}

	var sections []string

	if page.List != nil {
		listHTML, err := r.renderList(*page.List, opts)
		if err != nil {
			return nil, err
		}
		sections = append(sections, listHTML)
	}
	if page.Form != nil {
		formHTML, err := r.renderForm(*page.Form, opts)
		if err != nil {
			return nil, err
		}
		sections = append(sections, formHTML)
	}
	for _, modal := range page.Modals {
		modalHTML, err := r.renderModal(modal, opts)
		if err != nil {
			return nil, err
		}
		sections = append(sections, modalHTML)
	}

	inlineStyles := ""
	if r.defaultStyles {
		inlineStyles = defaultStylesheet()
	}

	name := templateName(opts.Theme, "page", pageTemplate)
	data := map[string]any{
		"title":        page.Title,
		"sections":     sections,
		"head_links":   assets.headLinks(),
		"script_tags":  assets.scriptTags(),
		"inline_style": inlineStyles,
		"css_vars":     cssVars(opts.Theme),
		"chrome_class": string(ClassPage),
	}
	addI18n(data, opts)

	out, err := r.templates.RenderTemplate(name, data)
	if err != nil {
		return nil, fmt.Errorf("bootstrap renderer: render page: %w", err)
	}
	return []byte(out), nil
}

// RenderPager renders only the navigation control for a pager.Nav, for
// hosts embedding the pager into their own layouts.
func (r *Renderer) RenderPager(nav pager.Nav, opts render.Options) (string, error) {
	return r.renderPager(nav, opts)
}

func (r *Renderer) renderForm(form view.Form, opts render.Options) (string, error) {
	mapping := render.MapErrorPayload(form, opts.Errors)

	fields := make([]string, 0, len(form.Fields))
	for _, field := range form.Fields {
		value := field.Value
		if override, ok := opts.Values[field.Name]; ok {
			value = override
		}
		markup, err := renderField(field, value, mapping.Fields[field.Name])
		if err != nil {
			return "", err
		}
		fields = append(fields, markup)
	}

	csrf := strings.TrimSpace(opts.CSRFToken)
	if csrf == "" {
		csrf = strings.TrimSpace(form.CSRFToken)
	}

	submit := form.Submit
	if submit == "" {
		submit = render.Translate(opts, "actions.save", "Save")
	}

	method := strings.ToUpper(strings.TrimSpace(form.Method))
	if method == "" {
		method = "POST"
	}
	// Browsers only submit GET/POST; other verbs become POST plus a hidden
	// _method input for the host router to interpret.
	methodOverride := ""
	if method != "GET" && method != "POST" {
		methodOverride = method
		method = "POST"
	}

	name := templateName(opts.Theme, "form.body", formTemplate)
	data := map[string]any{
		"action":          form.Action,
		"method":          method,
		"method_override": methodOverride,
		"name":            form.Name,
		"csrf_token":      csrf,
		"fields":          fields,
		"form_errors":     mapping.Form,
		"submit_label":    submit,
		"cancel_url":      form.Cancel,
		"cancel_label":    render.Translate(opts, "actions.cancel", "Cancel"),
		"chrome_class":    string(ClassForm),
		"actions_class":   string(ClassActions),
		"errors_class":    string(ClassErrors),
	}
	addI18n(data, opts)

	out, err := r.templates.RenderTemplate(name, data)
	if err != nil {
		return "", fmt.Errorf("bootstrap renderer: render form: %w", err)
	}
	return out, nil
}

func (r *Renderer) renderList(list view.List, opts render.Options) (string, error) {
	pagerHTML, err := r.renderPager(list.Nav, opts)
	if err != nil {
		return "", err
	}

	emptyMessage := strings.TrimSpace(list.EmptyMessage)
	if emptyMessage == "" {
		emptyMessage = render.Translate(opts, "list.empty", "There are no items in the table.")
	}

	caps := list.Capabilities
	showActions := caps.CanView || caps.CanEdit || caps.CanDelete
	colspan := len(list.Columns)
	if showActions {
		colspan++
	}

	name := templateName(opts.Theme, "list.body", listTemplate)
	data := map[string]any{
		"title":         list.Title,
		"columns":       list.Columns,
		"rows":          list.Rows,
		"caps":          caps,
		"show_actions":  showActions,
		"colspan":       colspan,
		"csrf_token":    strings.TrimSpace(opts.CSRFToken),
		"create_url":    list.CreateURL,
		"create_label":  render.Translate(opts, "actions.create", "Create"),
		"edit_label":    render.Translate(opts, "actions.edit", "Edit"),
		"view_label":    render.Translate(opts, "actions.view", "View"),
		"delete_label":  render.Translate(opts, "actions.delete", "Delete"),
		"empty_message": emptyMessage,
		"pager":         pagerHTML,
		"chrome_class":  string(ClassList),
	}
	addI18n(data, opts)

	out, err := r.templates.RenderTemplate(name, data)
	if err != nil {
		return "", fmt.Errorf("bootstrap renderer: render list: %w", err)
	}
	return out, nil
}

func (r *Renderer) renderPager(nav pager.Nav, opts render.Options) (string, error) {
	if nav.Empty() {
		return "", nil
	}

	name := templateName(opts.Theme, "pager.nav", pagerTemplate)
	data := map[string]any{
		"links":        nav.Links,
		"aria_label":   render.Translate(opts, "pager.label", "Page navigation"),
		"chrome_class": string(ClassPagination),
	}
	addI18n(data, opts)

	out, err := r.templates.RenderTemplate(name, data)
	if err != nil {
		return "", fmt.Errorf("bootstrap renderer: render pager: %w", err)
	}
	return out, nil
}

func templateName(theme *render.ThemeConfig, key, fallback string) string {
	if override := theme.Partial(key); override != "" {
		return override
	}
	return fallback
}

func cssVars(theme *render.ThemeConfig) map[string]string {
	if theme == nil {
		return nil
	}
	return theme.CSSVars
}

func addI18n(data map[string]any, opts render.Options) {
	for name, fn := range render.TemplateI18nFuncs(opts) {
		data[name] = fn
	}
}
