package render

import (
	"strings"

	theme "github.com/goliatone/go-theme"
)

// ThemeConfig is the resolved theme payload renderers receive: partial
// template overrides, design tokens plus the CSS custom properties derived
// from them, and an asset URL resolver for theme-owned files.
type ThemeConfig struct {
	Theme    string
	Variant  string
	Partials map[string]string
	Tokens   map[string]string
	CSSVars  map[string]string
	AssetURL func(name string) string
}

// BuildThemeConfig flattens a go-theme selection into a ThemeConfig,
// merging variant overrides over the base manifest and both over the
// supplied fallback partials.
func BuildThemeConfig(selection *theme.Selection, fallbacks map[string]string) *ThemeConfig {
	if selection == nil || selection.Manifest == nil {
		return nil
	}

	manifest := selection.Manifest
	variantName := strings.TrimSpace(selection.Variant)

	partials := make(map[string]string, len(fallbacks)+len(manifest.Templates))
	for key, value := range fallbacks {
		partials[key] = value
	}
	for key, value := range manifest.Templates {
		partials[key] = value
	}

	tokens := make(map[string]string, len(manifest.Tokens))
	for key, value := range manifest.Tokens {
		tokens[key] = value
	}

	assetFiles := make(map[string]string, len(manifest.Assets.Files))
	for key, value := range manifest.Assets.Files {
		assetFiles[key] = value
	}

	if variant, ok := manifest.Variants[variantName]; ok {
		for key, value := range variant.Templates {
			partials[key] = value
		}
		for key, value := range variant.Tokens {
			tokens[key] = value
		}
		for key, value := range variant.Assets.Files {
			assetFiles[key] = value
		}
	}

	cssVars := make(map[string]string, len(tokens))
	for name, value := range tokens {
		cssVars["--"+name] = value
	}

	prefix := strings.TrimRight(manifest.Assets.Prefix, "/")

	return &ThemeConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: partials,
		Tokens:   tokens,
		CSSVars:  cssVars,
		AssetURL: func(name string) string {
			file, ok := assetFiles[name]
			if !ok || file == "" {
				return ""
			}
			if strings.HasPrefix(file, "http://") || strings.HasPrefix(file, "https://") || strings.HasPrefix(file, "/") {
				return file
			}
			if prefix == "" {
				return file
			}
			return prefix + "/" + file
		},
	}
}

// Partial returns the template override registered for key, or the empty
// string when the theme leaves the built-in template in place.
func (c *ThemeConfig) Partial(key string) string {
	if c == nil || len(c.Partials) == 0 {
		return ""
	}
	return c.Partials[key]
}

// Stylesheet resolves the theme stylesheet URL, if any.
func (c *ThemeConfig) Stylesheet() string {
	if c == nil || c.AssetURL == nil {
		return ""
	}
	return c.AssetURL("stylesheet")
}
