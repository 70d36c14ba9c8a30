package render

import (
	"errors"
	"strings"
)

// ErrMissingTranslator is passed to MissingTranslationHandler when no
// Translator is configured.
var ErrMissingTranslator = errors.New("render: translator not configured")

// Translator is the host-framework translation seam (the classic gettext
// shape). Implementations return the localized message for key under locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// TranslatorFunc adapts a plain function to the Translator interface.
type TranslatorFunc func(locale, key string, args ...any) (string, error)

func (f TranslatorFunc) Translate(locale, key string, args ...any) (string, error) {
	return f(locale, key, args...)
}

// MissingTranslationHandler decides the string rendered when a translation
// cannot be resolved.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

func missingTranslationDefault(_, key string, _ []any, _ error) string {
	return key
}

// Translate resolves key through opts, falling back to fallback and finally
// the key itself. It never fails; translation problems degrade to readable
// output.
func Translate(opts Options, key, fallback string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return fallback
	}

	onMissing := opts.OnMissing
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}

	if opts.Translator == nil {
		if strings.TrimSpace(fallback) != "" {
			return fallback
		}
		return onMissing(opts.Locale, key, nil, ErrMissingTranslator)
	}

	msg, err := opts.Translator.Translate(opts.Locale, key)
	if err != nil || strings.TrimSpace(msg) == "" {
		if strings.TrimSpace(fallback) != "" {
			return fallback
		}
		return onMissing(opts.Locale, key, nil, err)
	}
	return msg
}

// TemplateI18nFuncs returns helpers for injection into the template engine.
// The main helper is gettext(key, ...args); templates use it for the static
// chrome strings (button titles, empty-list messages).
func TemplateI18nFuncs(opts Options) map[string]any {
	return map[string]any{
		"gettext": func(key string, _ ...any) string {
			return Translate(opts, key, "")
		},
	}
}
