package uiconfig

import (
	"sort"

	"github.com/goliatone/go-adminview/pkg/view"
)

// Apply rewrites the form's fields according to the view configuration:
// label/placeholder/description overrides, widget hints, hidden fields, and
// explicit ordering. Fields without an Order keep their relative position
// after the ordered ones.
func (v View) Apply(form *view.Form) {
	if form == nil || len(form.Fields) == 0 {
		return
	}

	fields := make([]view.Field, 0, len(form.Fields))
	for _, field := range form.Fields {
		cfg, ok := v.Fields[field.Name]
		if !ok {
			fields = append(fields, field)
			continue
		}
		if cfg.Hidden {
			field.Type = view.InputHidden
		}
		if cfg.Label != "" {
			field.Label = cfg.Label
		}
		if cfg.Placeholder != "" {
			field.Placeholder = cfg.Placeholder
		}
		if cfg.Description != "" {
			field.Description = cfg.Description
		}
		if cfg.Widget != "" {
			if field.Metadata == nil {
				field.Metadata = make(map[string]string)
			}
			field.Metadata["widget"] = cfg.Widget
		}
		for key, value := range cfg.Metadata {
			if field.Metadata == nil {
				field.Metadata = make(map[string]string)
			}
			field.Metadata[key] = value
		}
		fields = append(fields, field)
	}

	// Unordered fields sort after ordered ones, keeping their relative
	// position.
	keys := make(map[string]int, len(fields))
	for idx, field := range fields {
		key := 1<<20 + idx
		if cfg, ok := v.Fields[field.Name]; ok && cfg.Order != nil {
			key = *cfg.Order
		}
		keys[field.Name] = key
	}
	sort.SliceStable(fields, func(i, j int) bool {
		return keys[fields[i].Name] < keys[fields[j].Name]
	})

	form.Fields = fields
	if form.Name == "" {
		form.Name = v.Name
	}
}
