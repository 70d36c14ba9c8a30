package bootstrap

import (
	"html"
	"strings"
)

// Script describes a JavaScript dependency emitted once per rendered page.
type Script struct {
	Src    string
	Type   string
	Inline string
	Async  bool
	Defer  bool
	Module bool
}

// assetSet accumulates stylesheet and script dependencies during a render,
// deduplicating by href/src so shared widgets never emit an asset twice.
type assetSet struct {
	stylesheets []string
	scripts     []Script

	seenStyles  map[string]struct{}
	seenScripts map[string]struct{}
}

func newAssetSet() *assetSet {
	return &assetSet{
		seenStyles:  make(map[string]struct{}),
		seenScripts: make(map[string]struct{}),
	}
}

func (a *assetSet) addStylesheet(href string) {
	href = strings.TrimSpace(href)
	if href == "" {
		return
	}
	if _, exists := a.seenStyles[href]; exists {
		return
	}
	a.seenStyles[href] = struct{}{}
	a.stylesheets = append(a.stylesheets, href)
}

func (a *assetSet) addScript(script Script) {
	key := scriptKey(script)
	if key == "" {
		return
	}
	if _, exists := a.seenScripts[key]; exists {
		return
	}
	a.seenScripts[key] = struct{}{}
	a.scripts = append(a.scripts, script)
}

func scriptKey(script Script) string {
	if src := strings.TrimSpace(script.Src); src != "" {
		return "src:" + src
	}
	if inline := strings.TrimSpace(script.Inline); inline != "" {
		return "inline:" + inline
	}
	return ""
}

// headLinks renders the <link> tags for all collected stylesheets.
func (a *assetSet) headLinks() []string {
	out := make([]string, 0, len(a.stylesheets))
	for _, href := range a.stylesheets {
		out = append(out, `<link rel="stylesheet" href="`+html.EscapeString(href)+`">`)
	}
	return out
}

// scriptTags renders the <script> tags for all collected scripts.
func (a *assetSet) scriptTags() []string {
	out := make([]string, 0, len(a.scripts))
	for _, script := range a.scripts {
		var builder strings.Builder
		builder.WriteString("<script")
		if script.Module {
			builder.WriteString(` type="module"`)
		} else if script.Type != "" {
			builder.WriteString(` type="` + html.EscapeString(script.Type) + `"`)
		}
		if script.Src != "" {
			builder.WriteString(` src="` + html.EscapeString(script.Src) + `"`)
		}
		if script.Async {
			builder.WriteString(" async")
		}
		if script.Defer {
			builder.WriteString(" defer")
		}
		builder.WriteString(">")
		if script.Src == "" {
			builder.WriteString(script.Inline)
		}
		builder.WriteString("</script>")
		out = append(out, builder.String())
	}
	return out
}
