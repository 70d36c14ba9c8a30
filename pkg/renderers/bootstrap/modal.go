package bootstrap

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-adminview/pkg/render"
	"github.com/goliatone/go-adminview/pkg/richtext"
	"github.com/goliatone/go-adminview/pkg/view"
)

const modalTemplate = "templates/modal.tmpl"

// renderModal produces the trigger button plus the dialog shell for a modal.
// Modals without an explicit ID receive a generated one so several dialogs
// can share a page without colliding.
func (r *Renderer) renderModal(modal view.Modal, opts render.Options) (string, error) {
	id := strings.TrimSpace(modal.ID)
	if id == "" {
		id = "av-modal-" + uuid.NewString()
	}

	body := ""
	if modal.Form != nil {
		formHTML, err := r.renderForm(*modal.Form, opts)
		if err != nil {
			return "", fmt.Errorf("bootstrap: render modal form: %w", err)
		}
		body = formHTML
	} else if modal.BodyHTML != "" {
		body = richtext.Sanitize(modal.BodyHTML)
	}

	name := templateName(opts.Theme, "modal.body", modalTemplate)
	out, err := r.templates.RenderTemplate(name, map[string]any{
		"id":            id,
		"title":         modal.Title,
		"trigger_label": strings.TrimSpace(modal.TriggerLabel),
		"trigger_class": strings.TrimSpace(modal.TriggerClass),
		"content_url":   strings.TrimSpace(modal.ContentURL),
		"body":          body,
		"close_label":   render.Translate(opts, "actions.close", "Close"),
		"chrome_class":  string(ClassModal),
	})
	if err != nil {
		return "", fmt.Errorf("bootstrap: render modal %q: %w", id, err)
	}
	return out, nil
}
