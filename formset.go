// Package formset assembles the record-editing toolkit: dynamic form groups
// built from view definitions, the manager that adds and soft-deletes rows,
// exclusive-flag and duplicate-merge selection, transcription loading, and
// HTML fragment rendering. The root package re-exports the pieces callers
// wire together most often.
package formset

import (
	"io/fs"

	theme "github.com/goliatone/go-theme"

	"github.com/archivekit/formset/pkg/formtree"
	"github.com/archivekit/formset/pkg/manager"
	"github.com/archivekit/formset/pkg/render"
	"github.com/archivekit/formset/pkg/selection"
	"github.com/archivekit/formset/pkg/viewdef"
	"github.com/archivekit/formset/pkg/widgets"
)

// Core tree types, aliased for callers that only import the root package.
type (
	Field = formtree.Field
	Row   = formtree.Row
	Group = formtree.Group
	Kind  = formtree.Kind
)

// Manager aliases the row-manipulation entry point.
type Manager = manager.Manager

// Candidate and DuplicateTable alias the duplicate-merge selection types.
type (
	Candidate      = selection.Candidate
	DuplicateTable = selection.DuplicateTable
)

// NewManager constructs a row manager with the default widget registry
// attached, so cloned rows come back with their widget contracts stamped.
func NewManager(options ...manager.Option) *Manager {
	opts := append([]manager.Option{manager.WithWidgets(widgets.NewRegistry())}, options...)
	return manager.New(opts...)
}

// NewFragments constructs the fragment renderer over the embedded template
// bundle.
func NewFragments(options ...render.FragmentOption) (*render.Fragments, error) {
	return render.NewFragments(options...)
}

// WithTheme forwards a resolved go-theme renderer configuration to the
// fragment renderer so templates receive tokens and CSS variables.
func WithTheme(cfg *theme.RendererConfig) render.FragmentOption {
	return render.WithTheme(cfg)
}

// NewScope starts an exclusive-flag scope over rows for the given flag kind.
func NewScope(kind string, rows []*Row) *selection.Scope {
	return selection.NewScope(kind, rows)
}

// NewDuplicateTable initialises merge selection state over candidates.
func NewDuplicateTable(candidates []*Candidate) *DuplicateTable {
	return selection.NewDuplicateTable(candidates)
}

// LoadGroups reads view definition files from fsys and builds the combined
// group set, ready to hand to a Manager.
func LoadGroups(fsys fs.FS, names ...string) (map[string]*Group, error) {
	return viewdef.NewLoader(fsys).LoadGroups(names...)
}
