// Package manager implements the dynamic formset operations of the record
// editor: adding rows to a group by cloning a blueprint, renumbering the
// clone's field identifiers, and flagging rows or single fields for
// deletion without removing them from the tree.
package manager

import (
	"errors"
	"fmt"

	"github.com/archivekit/formset/pkg/formtree"
	"github.com/archivekit/formset/pkg/widgets"
)

// Sentinel errors callers branch on.
var (
	ErrGroupFull       = errors.New("manager: group has reached its row bound")
	ErrUnknownFormType = errors.New("manager: no blueprint for form type")
)

// Manager mutates form trees in response to editor actions. A zero-value
// Manager works without widget dispatch; use New to attach a registry.
type Manager struct {
	widgets *widgets.Registry
}

// Option configures a Manager.
type Option func(*Manager)

// WithWidgets attaches the registry used to re-initialise widget-requiring
// fields on freshly cloned rows.
func WithWidgets(registry *widgets.Registry) Option {
	return func(m *Manager) {
		if registry != nil {
			m.widgets = registry
		}
	}
}

// New constructs a Manager applying any provided options.
func New(options ...Option) *Manager {
	m := &Manager{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(m)
	}
	return m
}

// AddRow clones the blueprint registered for formType, appends it as the
// group's last row, renumbers every placeholder-carrying identifier with the
// prefix derived from the group's total-count control, re-initialises the
// clone's widgets, and increments the total-rows counter. The add control is
// disabled pre-emptively once the next add would reach the bound.
func (m *Manager) AddRow(group *formtree.Group, formType string) (*formtree.Row, error) {
	if group == nil {
		return nil, errors.New("manager: nil group")
	}
	if group.MaxRows > 0 && group.TotalRows >= group.MaxRows {
		return nil, fmt.Errorf("%w: %s", ErrGroupFull, group.Prefix)
	}
	blueprint, ok := group.Blueprint(formType)
	if !ok {
		return nil, fmt.Errorf("%w: %q in group %s", ErrUnknownFormType, formType, group.Prefix)
	}

	index := group.TotalRows
	prefix := formtree.DerivedPrefix(group.TotalControlName())

	row := blueprint.Clone()
	row.Index = index
	row.FormType = formType
	row.Trigger = formtree.TriggerDelete

	for _, field := range row.Fields {
		if !formtree.HasPlaceholder(field.Name) && !formtree.HasPlaceholder(field.ID) {
			continue
		}
		field.Name = formtree.ApplyIndex(field.Name, prefix, index)
		field.ID = formtree.FieldID(field.Name)
	}
	retargetGroups(row, prefix, index)

	if m != nil && m.widgets != nil {
		for _, field := range row.Fields {
			m.widgets.Initialize(field)
		}
	}

	group.Rows = append(group.Rows, row)
	group.TotalRows++
	if group.MaxRows > 0 && group.TotalRows+1 >= group.MaxRows {
		group.AddEnabled = false
	}
	return row, nil
}

// retargetGroups resolves the outer placeholder in nested group prefixes and
// in the names of fields belonging to nested blueprints. Deeper placeholders
// are left for the adds that eventually target those groups.
func retargetGroups(row *formtree.Row, prefix string, index int) {
	for _, nested := range row.Groups {
		nested.Prefix = formtree.ApplyIndexFirst(nested.Prefix, prefix, index)
		for _, blueprint := range nested.Blueprints {
			for _, field := range blueprint.Fields {
				field.Name = formtree.ApplyIndexFirst(field.Name, prefix, index)
			}
			retargetGroups(blueprint, prefix, index)
		}
		for _, nestedRow := range nested.Rows {
			retargetGroups(nestedRow, prefix, index)
		}
	}
}

// ToggleRowDeletion marks or unmarks a row as deleted: the header goes
// inactive, any exclusive flags the row holds are cleared together with
// their highlight, the deletable body is hidden, the DELETE checkbox is
// flipped, and the trigger swaps between its delete and undo
// representations. Two toggles restore the original state.
func (m *Manager) ToggleRowDeletion(row *formtree.Row) {
	if row == nil {
		return
	}
	row.HeaderInactive = !row.HeaderInactive

	for _, field := range row.Fields {
		if kind := field.Exclusive(); kind != "" {
			field.Checked = false
			row.SetHighlight(kind, false)
		}
	}

	row.BodyHidden = !row.BodyHidden

	if del := row.DeleteField(); del != nil {
		del.Checked = !del.Checked
	}

	if row.Trigger == formtree.TriggerUndo {
		row.Trigger = formtree.TriggerDelete
	} else {
		row.Trigger = formtree.TriggerUndo
	}
}

// ToggleFieldDeletion hides a single field and raises the group-level
// removal notice. Unlike row deletion no DELETE checkbox is involved; the
// server reconciles missing values on submission.
func (m *Manager) ToggleFieldDeletion(group *formtree.Group, field *formtree.Field) {
	if field != nil {
		field.Hidden = true
	}
	if group != nil {
		group.RemovalNotice = true
	}
}
