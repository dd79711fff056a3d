package viewdef

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/archivekit/formset/pkg/formtree"
)

// ErrDuplicateGroup is returned when two definition files declare a group
// with the same name.
var ErrDuplicateGroup = errors.New("viewdef: duplicate group")

// Loader reads view definitions from a filesystem. YAML and JSON files are
// both accepted; the extension decides the decoder.
type Loader struct {
	fsys fs.FS
}

// NewLoader returns a loader reading from fsys.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// Load reads and validates a single definition file.
func (l *Loader) Load(name string) (*Document, error) {
	raw, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("viewdef: read %s: %w", name, err)
	}
	doc, err := Parse(raw, path.Ext(name))
	if err != nil {
		return nil, fmt.Errorf("viewdef: parse %s: %w", name, err)
	}
	return doc, nil
}

// LoadGroups loads every named file and builds the combined group set. A
// group name appearing in more than one file is an error.
func (l *Loader) LoadGroups(names ...string) (map[string]*formtree.Group, error) {
	combined := make(map[string]*formtree.Group)
	for _, name := range names {
		doc, err := l.Load(name)
		if err != nil {
			return nil, err
		}
		groups, err := Build(doc)
		if err != nil {
			return nil, fmt.Errorf("viewdef: build %s: %w", name, err)
		}
		for groupName, group := range groups {
			if _, exists := combined[groupName]; exists {
				return nil, fmt.Errorf("%w: %s (in %s)", ErrDuplicateGroup, groupName, name)
			}
			combined[groupName] = group
		}
	}
	return combined, nil
}

// Parse decodes a definition document. ext selects the decoder: ".json"
// uses the JSON decoder, anything else is treated as YAML.
func Parse(raw []byte, ext string) (*Document, error) {
	var doc Document
	if strings.EqualFold(ext, ".json") {
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
	} else {
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (d *Document) validate() error {
	if len(d.Groups) == 0 {
		return errors.New("no groups declared")
	}
	for name, group := range d.Groups {
		if err := group.validate(name); err != nil {
			return err
		}
	}
	return nil
}

func (g GroupDef) validate(name string) error {
	if name == "" {
		return errors.New("group with empty name")
	}
	if len(g.Forms) == 0 {
		return fmt.Errorf("group %s: no form types", name)
	}
	if g.MaxRows < 0 {
		return fmt.Errorf("group %s: negative max_rows", name)
	}
	for formType, form := range g.Forms {
		if formType == "" {
			return fmt.Errorf("group %s: form type with empty name", name)
		}
		if len(form.Fields) == 0 {
			return fmt.Errorf("group %s: form %s: no fields", name, formType)
		}
		for _, field := range form.Fields {
			if field.Name == "" {
				return fmt.Errorf("group %s: form %s: field with empty name", name, formType)
			}
			if _, ok := validKinds[formtree.Kind(field.Kind)]; !ok {
				return fmt.Errorf("group %s: form %s: field %s: unknown kind %q", name, formType, field.Name, field.Kind)
			}
		}
		for nestedName, nested := range form.Groups {
			if err := nested.validate(name + "." + nestedName); err != nil {
				return err
			}
		}
	}
	return nil
}
