package render

// ChromeClass is a typed identifier for the semantic CSS classes the
// fragments emit.
type ChromeClass string

const (
	ClassRow           ChromeClass = "formset-row"
	ClassRowInactive   ChromeClass = "formset-row-inactive"
	ClassRowHidden     ChromeClass = "formset-row-hidden"
	ClassRowHighlight  ChromeClass = "formset-row-selected"
	ClassField         ChromeClass = "formset-field"
	ClassFieldHidden   ChromeClass = "formset-field-hidden"
	ClassNotice        ChromeClass = "formset-removal-notice"
	ClassDuplicateRow  ChromeClass = "duplicate-row"
	ClassFilterToggle  ChromeClass = "filter-toggle"
	ClassDeleteTrigger ChromeClass = "row-delete-trigger"
)

// chromeContext exposes the class table to the fragment templates, which
// never hardcode a state class themselves.
func chromeContext() map[string]string {
	return map[string]string{
		"row":            string(ClassRow),
		"row_inactive":   string(ClassRowInactive),
		"row_hidden":     string(ClassRowHidden),
		"row_selected":   string(ClassRowHighlight),
		"field":          string(ClassField),
		"field_hidden":   string(ClassFieldHidden),
		"notice":         string(ClassNotice),
		"duplicate_row":  string(ClassDuplicateRow),
		"filter_toggle":  string(ClassFilterToggle),
		"delete_trigger": string(ClassDeleteTrigger),
	}
}
