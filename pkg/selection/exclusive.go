// Package selection implements the editor's radio-button-by-convention
// semantics: independent checkboxes where checking one clears all siblings
// of the same kind, plus the primary/merge choice over duplicate-record
// candidates.
package selection

import (
	"errors"
	"fmt"

	"github.com/archivekit/formset/pkg/formtree"
)

var errRowOutsideScope = errors.New("selection: row is not part of the scope")

// Scope is a set of sibling rows sharing exclusive-flag semantics for one
// kind. At most one row in the scope has the flag checked; the highlight
// follows the checked row.
type Scope struct {
	Kind string
	Rows []*formtree.Row
}

// NewScope builds a scope over the rows of a group for an exclusive kind
// (formtree.FlagPreferred or formtree.FlagAuthorised).
func NewScope(kind string, rows []*formtree.Row) *Scope {
	return &Scope{Kind: kind, Rows: rows}
}

// Check marks target's flag of the scope's kind and clears it on every
// sibling, moving the highlight to target. Checking an already-checked row
// is a no-op beyond re-asserting the invariant.
func (s *Scope) Check(target *formtree.Row) error {
	if s == nil || target == nil {
		return errors.New("selection: nil scope or row")
	}
	found := false
	for _, row := range s.Rows {
		if row == target {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: kind %s", errRowOutsideScope, s.Kind)
	}

	for _, row := range s.Rows {
		flag := s.flagField(row)
		if flag == nil {
			continue
		}
		checked := row == target
		flag.Checked = checked
		row.SetHighlight(s.Kind, checked)
	}
	return nil
}

// Checked returns the row currently holding the flag, or nil.
func (s *Scope) Checked() *formtree.Row {
	if s == nil {
		return nil
	}
	for _, row := range s.Rows {
		if flag := s.flagField(row); flag != nil && flag.Checked {
			return row
		}
	}
	return nil
}

func (s *Scope) flagField(row *formtree.Row) *formtree.Field {
	for _, field := range row.Fields {
		if field.Exclusive() == s.Kind {
			return field
		}
	}
	return nil
}
