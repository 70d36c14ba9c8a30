package render

// Options carries per-request data renderers can use without mutating the
// view-model. Ambient values from the host (CSRF token, translator, theme)
// are threaded here explicitly so rendering stays pure and testable.
type Options struct {
	// CSRFToken, when non-empty, is emitted as a hidden input in every form.
	CSRFToken string
	// Values pre-populates controls keyed by field name, overriding the
	// values baked into the view-model.
	Values map[string]string
	// Errors surfaces server-side validation feedback keyed by field name.
	// Keys that match no field become form-level messages so nothing is
	// silently dropped.
	Errors map[string][]string
	// Locale and Translator drive label/message translation. A nil
	// Translator falls back to the untranslated string.
	Locale     string
	Translator Translator
	// OnMissing controls the string produced when a translation is missing.
	OnMissing MissingTranslationHandler
	// Theme, when set, overrides template partials and contributes CSS
	// variables and asset URLs.
	Theme *ThemeConfig
}
