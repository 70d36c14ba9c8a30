package uiconfig

// DefaultPageSize applies when a view omits pageSize.
const DefaultPageSize = 20

// Store keeps the parsed views from config documents. It is safe for
// concurrent readers when treated as immutable after construction.
type Store struct {
	views map[string]View
}

// View describes how one admin resource is presented.
type View struct {
	Name     string
	Source   string
	Title    string
	PageSize int `validate:"gte=1,lte=500"`
	Theme    ThemeConfig
	Columns  []string
	Fields   map[string]FieldConfig `validate:"dive"`
}

// ThemeConfig names the theme and variant a view renders with.
type ThemeConfig struct {
	Name    string `json:"name" yaml:"name"`
	Variant string `json:"variant" yaml:"variant"`
}

// FieldConfig customises how a single field is rendered.
type FieldConfig struct {
	Label       string            `json:"label,omitempty" yaml:"label,omitempty"`
	Placeholder string            `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Widget      string            `json:"widget,omitempty" yaml:"widget,omitempty"`
	Hidden      bool              `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	Order       *int              `json:"order,omitempty" yaml:"order,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}
