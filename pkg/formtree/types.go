package formtree

// Kind is the enumerated field kind used to dispatch widget initialisers.
// It replaces the markup-class sniffing the editor templates used to rely
// on: every field declares what it is, and the widget registry decides what
// to do about it.
type Kind string

const (
	KindText         Kind = "text"
	KindTextarea     Kind = "textarea"
	KindRichText     Kind = "richtext"
	KindSelect       Kind = "select"
	KindSearchSelect Kind = "search-select"
	KindRemoteSelect Kind = "remote-select"
	KindCheckbox     Kind = "checkbox"
	KindSlider       Kind = "slider"
	KindHidden       Kind = "hidden"
)

// Exclusive-flag identifiers used by checkbox fields that participate in
// radio-by-convention groups (see pkg/selection). The suffixes match the
// model fields they submit to.
const (
	FlagPreferred  = "preferred"
	FlagAuthorised = "authorised"
)

// Field suffixes with fixed meaning inside a row.
const (
	DeleteFieldSuffix     = "-DELETE"
	PreferredFieldSuffix  = "-preferred_identity"
	AuthorisedFieldSuffix = "-authorised_form"
)

// Field is a single form control inside a row. Name carries the compound
// identifier `<group-prefix>-<index>-<field>`; blueprint fields carry the
// placeholder token instead of a numeric index.
type Field struct {
	Name     string
	ID       string
	Kind     Kind
	Label    string
	Value    string
	Options  []string
	Checked  bool
	Hidden   bool
	Required bool
	Metadata map[string]string
}

// Exclusive returns the exclusive-flag kind this field participates in, or
// an empty string. Explicit metadata wins over the naming convention.
func (f *Field) Exclusive() string {
	if f == nil || f.Kind != KindCheckbox {
		return ""
	}
	if f.Metadata != nil {
		if kind := f.Metadata["exclusive"]; kind != "" {
			return kind
		}
	}
	switch {
	case hasSuffix(f.Name, PreferredFieldSuffix):
		return FlagPreferred
	case hasSuffix(f.Name, AuthorisedFieldSuffix):
		return FlagAuthorised
	}
	return ""
}

// TriggerState tracks which representation a row's delete trigger shows.
type TriggerState string

const (
	TriggerDelete TriggerState = "delete"
	TriggerUndo   TriggerState = "undo"
)

// Row is one instance of a sub-form. Rows are never structurally removed on
// the client side; deletion flags the row and hides its body, and the server
// performs the actual removal on the next submission.
type Row struct {
	Index    int
	FormType string
	Fields   []*Field
	Groups   []*Group

	HeaderInactive bool
	BodyHidden     bool
	Trigger        TriggerState

	highlights map[string]bool
}

// Field returns the row's field whose name ends with suffix, or nil.
func (r *Row) Field(suffix string) *Field {
	if r == nil {
		return nil
	}
	for _, field := range r.Fields {
		if hasSuffix(field.Name, suffix) {
			return field
		}
	}
	return nil
}

// DeleteField returns the row's DELETE checkbox, or nil for rows without
// one (extra rows that have no stored counterpart).
func (r *Row) DeleteField() *Field {
	return r.Field(DeleteFieldSuffix)
}

// SetHighlight moves the visual highlight for an exclusive-flag kind on or
// off this row.
func (r *Row) SetHighlight(kind string, on bool) {
	if r == nil || kind == "" {
		return
	}
	if r.highlights == nil {
		if !on {
			return
		}
		r.highlights = make(map[string]bool, 2)
	}
	if on {
		r.highlights[kind] = true
		return
	}
	delete(r.highlights, kind)
}

// Highlighted reports whether the row currently carries the highlight for
// the given exclusive-flag kind.
func (r *Row) Highlighted(kind string) bool {
	return r != nil && r.highlights[kind]
}

// Group is a named collection of rows sharing one prefix scheme and one
// total-rows counter. A zero MaxRows means unbounded.
type Group struct {
	Prefix     string
	Rows       []*Row
	Blueprints map[string]*Row

	TotalRows int
	MaxRows   int

	AddEnabled    bool
	RemovalNotice bool

	Parent *Row
}

// TotalControlName is the name of the hidden counter control holding
// TotalRows, following the management-form convention.
func (g *Group) TotalControlName() string {
	return g.Prefix + TotalControlSuffix
}

// MaxControlName is the name of the hidden control holding MaxRows.
func (g *Group) MaxControlName() string {
	return g.Prefix + MaxControlSuffix
}

// Blueprint returns the template row registered for formType.
func (g *Group) Blueprint(formType string) (*Row, bool) {
	if g == nil || g.Blueprints == nil {
		return nil, false
	}
	row, ok := g.Blueprints[formType]
	return row, ok
}

func hasSuffix(s, suffix string) bool {
	return len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix
}
