// Package view defines the typed view-models the renderers consume. Widget
// selection is carried explicitly on the data as an InputType enum rather
// than probed off host-framework objects at render time.
package view

import "github.com/goliatone/go-adminview/pkg/pager"

// InputType is the tagged field kind renderers branch on.
type InputType string

const (
	InputText     InputType = "text"
	InputPassword InputType = "password"
	InputTextarea InputType = "textarea"
	InputNumber   InputType = "number"
	InputCheckbox InputType = "checkbox"
	InputSelect   InputType = "select"
	InputFile     InputType = "file"
	InputHidden   InputType = "hidden"
	InputDate     InputType = "date"
	InputDateTime InputType = "datetime-local"
	InputEmail    InputType = "email"
	InputURL      InputType = "url"
)

// Option is a single choice for select controls.
type Option struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// Field models one input inside a rendered form.
type Field struct {
	Name        string            `json:"name"`
	Type        InputType         `json:"type"`
	Label       string            `json:"label,omitempty"`
	Placeholder string            `json:"placeholder,omitempty"`
	Description string            `json:"description,omitempty"`
	Value       string            `json:"value,omitempty"`
	Checked     bool              `json:"checked,omitempty"`
	Required    bool              `json:"required"`
	Disabled    bool              `json:"disabled,omitempty"`
	Options     []Option          `json:"options,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Form is a complete form view-model. The CSRF token is threaded in
// explicitly by the host; an empty token simply omits the hidden input.
type Form struct {
	Name      string            `json:"name,omitempty"`
	Action    string            `json:"action"`
	Method    string            `json:"method"`
	CSRFToken string            `json:"csrfToken,omitempty"`
	Fields    []Field           `json:"fields"`
	Submit    string            `json:"submit,omitempty"`
	Cancel    string            `json:"cancel,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// Capabilities are the host-supplied permission flags gating which controls
// a view renders.
type Capabilities struct {
	CanCreate bool `json:"canCreate"`
	CanEdit   bool `json:"canEdit"`
	CanDelete bool `json:"canDelete"`
	CanView   bool `json:"canView"`
	CanExport bool `json:"canExport"`
}

// Modal describes a modal window: a trigger control plus the dialog shell.
// When ID is empty renderers assign a unique one so multiple modals can
// coexist on a page.
type Modal struct {
	ID           string `json:"id,omitempty"`
	Title        string `json:"title"`
	TriggerLabel string `json:"triggerLabel,omitempty"`
	TriggerClass string `json:"triggerClass,omitempty"`
	// ContentURL is loaded into the modal body on open; BodyHTML is used
	// verbatim when no URL is set and must already be trusted markup.
	ContentURL string `json:"contentUrl,omitempty"`
	BodyHTML   string `json:"bodyHtml,omitempty"`
	Form       *Form  `json:"form,omitempty"`
}

// Column is a list-view column header.
type Column struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// Cell is a rendered list-view cell. HTML cells bypass escaping and must be
// produced by trusted code.
type Cell struct {
	Text string `json:"text,omitempty"`
	HTML string `json:"html,omitempty"`
}

// Row is one list-view record plus its action URLs (empty URL hides the
// action regardless of capabilities).
type Row struct {
	Cells     []Cell `json:"cells"`
	EditURL   string `json:"editUrl,omitempty"`
	ViewURL   string `json:"viewUrl,omitempty"`
	DeleteURL string `json:"deleteUrl,omitempty"`
}

// List is a paginated tabular view over a model.
type List struct {
	Title        string       `json:"title,omitempty"`
	Columns      []Column     `json:"columns"`
	Rows         []Row        `json:"rows"`
	Capabilities Capabilities `json:"capabilities"`
	CreateURL    string       `json:"createUrl,omitempty"`
	Nav          pager.Nav    `json:"nav"`
	// EmptyMessage is shown when Rows is empty.
	EmptyMessage string `json:"emptyMessage,omitempty"`
}

// Page is the top-level structure handed to a Renderer. Only the populated
// sections are rendered, in declaration order.
type Page struct {
	Title  string  `json:"title,omitempty"`
	List   *List   `json:"list,omitempty"`
	Form   *Form   `json:"form,omitempty"`
	Modals []Modal `json:"modals,omitempty"`
}
