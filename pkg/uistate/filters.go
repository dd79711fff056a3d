package uistate

// FilterItem is one value in a faceted filter list.
type FilterItem struct {
	Label    string
	Count    int
	Link     string
	Selected bool
}

// DefaultFilterThreshold is how many filter values show before the list
// collapses behind a "show more" control.
const DefaultFilterThreshold = 5

// FilterList is a collapsible facet value list. Lists at or under the
// threshold have no toggle at all.
type FilterList struct {
	Name      string
	Items     []FilterItem
	Threshold int
	Expanded  bool
}

// NewFilterList builds a collapsed list with the default threshold.
func NewFilterList(name string, items []FilterItem) *FilterList {
	return &FilterList{Name: name, Items: items, Threshold: DefaultFilterThreshold}
}

// Collapsible reports whether the list is long enough to need a toggle.
func (l *FilterList) Collapsible() bool {
	return l != nil && len(l.Items) > l.threshold()
}

// Visible returns the items currently shown: all of them when expanded or
// not collapsible, otherwise the first threshold items.
func (l *FilterList) Visible() []FilterItem {
	if l == nil {
		return nil
	}
	if l.Expanded || !l.Collapsible() {
		return l.Items
	}
	return l.Items[:l.threshold()]
}

// HiddenCount reports how many items the collapsed state conceals.
func (l *FilterList) HiddenCount() int {
	if l == nil || l.Expanded || !l.Collapsible() {
		return 0
	}
	return len(l.Items) - l.threshold()
}

// Toggle expands or collapses the list and reports the new state.
func (l *FilterList) Toggle() bool {
	l.Expanded = !l.Expanded
	return l.Expanded
}

func (l *FilterList) threshold() int {
	if l.Threshold <= 0 {
		return DefaultFilterThreshold
	}
	return l.Threshold
}
