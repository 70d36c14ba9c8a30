// Package widgets maps view fields to client-side widget implementations.
// Hosts register matchers for their own widgets; the registry decorates
// fields with the chosen widget name so templates and scripts can pick the
// matching enhancement.
package widgets

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-adminview/pkg/view"
)

// Built-in widget identifiers exposed by the registry.
const (
	WidgetToggle     = "toggle"
	WidgetSelect     = "select"
	WidgetDatePicker = "date-picker"
	WidgetMarkdown   = "markdown-editor"
	WidgetFileUpload = "file-upload"
)

// Matcher decides whether a widget should handle the supplied field.
type Matcher func(field view.Field) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry selects widgets for fields based on explicit hints or registered
// matchers. Higher priority wins; ties fall back to registration order. An
// empty registry never resolves a widget.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in widget matchers
// registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a widget matcher with the provided name and priority. Higher
// priority values take precedence. Callers should avoid duplicate names; the
// latest registration wins during resolution.
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the widget name for a field. Explicit hints in field
// metadata are honoured before matcher evaluation.
func (r *Registry) Resolve(field view.Field) (string, bool) {
	if explicit := explicitWidget(field); explicit != "" {
		return explicit, true
	}
	if r == nil {
		return "", false
	}
	r.mu.RLock()
	if len(r.rules) == 0 {
		r.mu.RUnlock()
		return "", false
	}
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(field) {
			return entry.name, true
		}
	}
	return "", false
}

// Decorate applies registry resolution to every field in the form, setting
// Metadata["widget"] to the chosen name while preserving existing values.
func (r *Registry) Decorate(form *view.Form) error {
	if r == nil || form == nil {
		return nil
	}
	for idx, field := range form.Fields {
		form.Fields[idx] = r.decorateField(field)
	}
	return nil
}

func (r *Registry) decorateField(field view.Field) view.Field {
	widget, ok := r.Resolve(field)
	if !ok || widget == "" {
		return field
	}
	if field.Metadata == nil {
		field.Metadata = make(map[string]string)
	}
	if field.Metadata["widget"] == "" {
		field.Metadata["widget"] = widget
	}
	return field
}

func explicitWidget(field view.Field) string {
	if field.Metadata == nil {
		return ""
	}
	if widget := strings.TrimSpace(field.Metadata["admin.widget"]); widget != "" {
		return widget
	}
	return strings.TrimSpace(field.Metadata["widget"])
}

func (r *Registry) registerBuiltins() {
	r.Register(WidgetToggle, 90, func(field view.Field) bool {
		return field.Type == view.InputCheckbox
	})

	r.Register(WidgetSelect, 80, func(field view.Field) bool {
		return field.Type == view.InputSelect || len(field.Options) > 0
	})

	r.Register(WidgetDatePicker, 70, func(field view.Field) bool {
		return field.Type == view.InputDate || field.Type == view.InputDateTime
	})

	r.Register(WidgetMarkdown, 60, func(field view.Field) bool {
		if field.Type != view.InputTextarea {
			return false
		}
		format := ""
		if field.Metadata != nil {
			format = strings.TrimSpace(strings.ToLower(field.Metadata["format"]))
		}
		return format == "markdown" || format == "md"
	})

	r.Register(WidgetFileUpload, 50, func(field view.Field) bool {
		return field.Type == view.InputFile
	})
}
