// Package viewdef loads editing-view definitions: which formset groups a
// record edit view carries, their row bounds, and the blueprint fields each
// form type clones from. Definitions live in YAML or JSON files and build
// directly into formtree groups.
package viewdef

import "github.com/archivekit/formset/pkg/formtree"

// Document is one parsed definition file.
type Document struct {
	Groups map[string]GroupDef `yaml:"groups" json:"groups"`
}

// GroupDef describes one formset group.
type GroupDef struct {
	MaxRows int                `yaml:"max_rows" json:"max_rows"`
	Forms   map[string]FormDef `yaml:"forms" json:"forms"`
}

// FormDef is the blueprint for one form type within a group.
type FormDef struct {
	Fields []FieldDef          `yaml:"fields" json:"fields"`
	Groups map[string]GroupDef `yaml:"groups" json:"groups"`
}

// FieldDef describes one blueprint field. Name is the bare field name; the
// builder derives the full compound identifier with the placeholder token.
type FieldDef struct {
	Name      string            `yaml:"name" json:"name"`
	Kind      string            `yaml:"kind" json:"kind"`
	Label     string            `yaml:"label" json:"label"`
	Required  bool              `yaml:"required" json:"required"`
	Options   []string          `yaml:"options" json:"options"`
	Exclusive string            `yaml:"exclusive" json:"exclusive"`
	Widget    map[string]string `yaml:"widget" json:"widget"`
}

var validKinds = map[formtree.Kind]struct{}{
	formtree.KindText:         {},
	formtree.KindTextarea:     {},
	formtree.KindRichText:     {},
	formtree.KindSelect:       {},
	formtree.KindSearchSelect: {},
	formtree.KindRemoteSelect: {},
	formtree.KindCheckbox:     {},
	formtree.KindSlider:       {},
	formtree.KindHidden:       {},
}
