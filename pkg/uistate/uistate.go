// Package uistate models the editor's peripheral display state: modals,
// help-text toggles, collapsible filter lists, and the sortable table's
// pagination state. All of it is plain run-to-completion toggling; nothing
// here touches the network.
package uistate

// Modal is an open/close overlay.
type Modal struct {
	Open bool
}

func (m *Modal) Show() { m.Open = true }
func (m *Modal) Hide() { m.Open = false }

// Toggle flips the modal and reports the new state.
func (m *Modal) Toggle() bool {
	m.Open = !m.Open
	return m.Open
}

// HelpToggle tracks whether a field's help text is expanded.
type HelpToggle struct {
	Expanded bool
}

// Toggle flips the help text and reports the new state.
func (h *HelpToggle) Toggle() bool {
	h.Expanded = !h.Expanded
	return h.Expanded
}
