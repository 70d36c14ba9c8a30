// Package richtext renders caller-supplied Markdown (field descriptions,
// help text, empty-state messages) into HTML that is safe to inline into
// admin chrome. Output is always sanitized; there is no opt-out.
package richtext

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	markdown = goldmark.New(
		goldmark.WithExtensions(extension.Linkify, extension.Strikethrough),
	)
	policy = bluemonday.UGCPolicy()
)

// Render converts Markdown into sanitized HTML.
func Render(source string) (string, error) {
	if strings.TrimSpace(source) == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("richtext: convert markdown: %w", err)
	}
	return strings.TrimSpace(policy.Sanitize(buf.String())), nil
}

// RenderInline renders Markdown and strips the wrapping paragraph tag so the
// result can sit inside <small>/<span> help-text containers.
func RenderInline(source string) (string, error) {
	html, err := Render(source)
	if err != nil {
		return "", err
	}
	html = strings.TrimSpace(html)
	if strings.HasPrefix(html, "<p>") && strings.HasSuffix(html, "</p>") && strings.Count(html, "<p>") == 1 {
		html = strings.TrimSuffix(strings.TrimPrefix(html, "<p>"), "</p>")
	}
	return strings.TrimSpace(html), nil
}

// Sanitize applies the UGC policy to already-rendered HTML.
func Sanitize(html string) string {
	return policy.Sanitize(html)
}
