// Package uiconfig loads admin-view configuration documents. A config file
// customises how a resource is presented: page size, theme selection, list
// columns, and per-field overrides. Files may be JSON or YAML and are
// discovered by walking an fs.FS.
package uiconfig

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadFS walks the provided filesystem and parses JSON/YAML config files.
// When fsys is nil or no config files are present, the returned store is
// empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{views: make(map[string]View)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isConfigFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("uiconfig: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for name, raw := range doc.Views {
			id := strings.TrimSpace(name)
			if id == "" {
				return fmt.Errorf("uiconfig: file %s defines an empty view name", path)
			}
			if _, exists := store.views[id]; exists {
				return fmt.Errorf("uiconfig: duplicate view %q (file %s)", id, path)
			}

			view, err := normalizeView(raw, id, path)
			if err != nil {
				return err
			}
			store.views[id] = view
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

// View returns the configuration for the supplied view name.
func (s *Store) View(name string) (View, bool) {
	if s == nil {
		return View{}, false
	}
	view, ok := s.views[name]
	return view, ok
}

// Names returns the configured view names in no particular order.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.views))
	for name := range s.views {
		out = append(out, name)
	}
	return out
}

// Empty reports whether the store holds any views.
func (s *Store) Empty() bool {
	return s == nil || len(s.views) == 0
}

type documentFile struct {
	Views map[string]viewFile `json:"views" yaml:"views"`
}

type viewFile struct {
	Title    string                 `json:"title" yaml:"title"`
	PageSize int                    `json:"pageSize" yaml:"pageSize"`
	Theme    ThemeConfig            `json:"theme" yaml:"theme"`
	Columns  []string               `json:"columns" yaml:"columns"`
	Fields   map[string]FieldConfig `json:"fields" yaml:"fields"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("uiconfig: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	return documentFile{}, fmt.Errorf("uiconfig: parse %s: invalid JSON or YAML", source)
}

func normalizeView(raw viewFile, id, source string) (View, error) {
	view := View{
		Name:     id,
		Source:   source,
		Title:    strings.TrimSpace(raw.Title),
		PageSize: raw.PageSize,
		Theme:    raw.Theme,
		Columns:  append([]string(nil), raw.Columns...),
		Fields:   make(map[string]FieldConfig, len(raw.Fields)),
	}
	if view.PageSize == 0 {
		view.PageSize = DefaultPageSize
	}

	for key, cfg := range raw.Fields {
		name := strings.TrimSpace(key)
		if name == "" {
			return View{}, fmt.Errorf("uiconfig: view %q (file %s) defines an empty field key", id, source)
		}
		if _, exists := view.Fields[name]; exists {
			return View{}, fmt.Errorf("uiconfig: view %q (file %s) defines duplicate field %q", id, source, name)
		}
		view.Fields[name] = cloneFieldConfig(cfg)
	}

	if err := validate.Struct(view); err != nil {
		return View{}, fmt.Errorf("uiconfig: view %q (file %s) invalid: %w", id, source, err)
	}
	return view, nil
}

func cloneFieldConfig(cfg FieldConfig) FieldConfig {
	out := cfg
	if len(cfg.Metadata) > 0 {
		out.Metadata = make(map[string]string, len(cfg.Metadata))
		for k, v := range cfg.Metadata {
			out.Metadata[k] = v
		}
	}
	return out
}

func isConfigFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
