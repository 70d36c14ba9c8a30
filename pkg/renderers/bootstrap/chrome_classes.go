package bootstrap

// ChromeClass is a typed identifier for the semantic chrome CSS classes the
// renderer emits.
type ChromeClass string

const (
	ClassPage       ChromeClass = "av-page"
	ClassForm       ChromeClass = "av-form"
	ClassFieldGroup ChromeClass = "av-field"
	ClassActions    ChromeClass = "av-actions"
	ClassErrors     ChromeClass = "av-errors"
	ClassList       ChromeClass = "av-list"
	ClassPagination ChromeClass = "av-pagination"
	ClassModal      ChromeClass = "av-modal"
)
