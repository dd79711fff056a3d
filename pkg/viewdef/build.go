package viewdef

import (
	"sort"

	"github.com/archivekit/formset/pkg/formtree"
)

// Build turns a validated document into formtree groups ready for the
// manager. Every group starts empty; blueprint field names carry the
// placeholder token so row creation can stamp in real indices.
func Build(doc *Document) (map[string]*formtree.Group, error) {
	groups := make(map[string]*formtree.Group, len(doc.Groups))
	for name, def := range doc.Groups {
		groups[name] = buildGroup(name, def, nil)
	}
	return groups, nil
}

func buildGroup(prefix string, def GroupDef, parent *formtree.Row) *formtree.Group {
	group := &formtree.Group{
		Prefix:     prefix,
		Blueprints: make(map[string]*formtree.Row, len(def.Forms)),
		MaxRows:    def.MaxRows,
		Parent:     parent,
	}
	group.AddEnabled = group.MaxRows == 0 || group.TotalRows < group.MaxRows

	for _, formType := range sortedKeys(def.Forms) {
		form := def.Forms[formType]
		blueprint := &formtree.Row{
			Index:    -1,
			FormType: formType,
			Trigger:  formtree.TriggerDelete,
		}
		for _, fieldDef := range form.Fields {
			blueprint.Fields = append(blueprint.Fields, buildField(prefix, fieldDef))
		}
		for _, nestedName := range sortedKeys(form.Groups) {
			nestedPrefix := prefix + "-" + formtree.Placeholder + "-" + nestedName
			blueprint.Groups = append(blueprint.Groups, buildGroup(nestedPrefix, form.Groups[nestedName], blueprint))
		}
		group.Blueprints[formType] = blueprint
	}
	return group
}

func buildField(prefix string, def FieldDef) *formtree.Field {
	name := prefix + "-" + formtree.Placeholder + "-" + def.Name
	field := &formtree.Field{
		Name:     name,
		ID:       formtree.FieldID(name),
		Kind:     formtree.Kind(def.Kind),
		Label:    def.Label,
		Options:  append([]string(nil), def.Options...),
		Required: def.Required,
	}
	if def.Exclusive != "" || len(def.Widget) > 0 {
		field.Metadata = make(map[string]string, len(def.Widget)+1)
		for key, value := range def.Widget {
			field.Metadata[key] = value
		}
		if def.Exclusive != "" {
			field.Metadata["exclusive"] = def.Exclusive
		}
	}
	return field
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
