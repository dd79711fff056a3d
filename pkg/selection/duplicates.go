package selection

import "errors"

// Candidate is one row in the duplicate-record table: a possible duplicate
// of the record being edited, with a primary choice and a merge choice. The
// merge control stays disabled until some other row is chosen as primary.
type Candidate struct {
	RecordID    int64
	DisplayName string

	Primary       bool
	MergeEnabled  bool
	MergeSelected bool
}

// DuplicateTable tracks the primary/merge selection over a set of candidate
// duplicate records. Invariant: at most one candidate is primary, the
// primary's own merge control is disabled, and all other merge controls are
// enabled exactly when a primary exists.
type DuplicateTable struct {
	Candidates []*Candidate
}

// NewDuplicateTable builds a table with every merge control disabled, the
// state before any primary is chosen.
func NewDuplicateTable(candidates []*Candidate) *DuplicateTable {
	for _, candidate := range candidates {
		candidate.Primary = false
		candidate.MergeEnabled = false
	}
	return &DuplicateTable{Candidates: candidates}
}

// SetPrimary marks target as the primary record. Every other candidate's
// merge control becomes enabled; the former primary loses its flag and any
// merge selection sitting in its paired cell is cleared.
func (t *DuplicateTable) SetPrimary(target *Candidate) error {
	if t == nil || target == nil {
		return errors.New("selection: nil table or candidate")
	}

	var former *Candidate
	found := false
	for _, candidate := range t.Candidates {
		if candidate.Primary && candidate != target {
			former = candidate
		}
		if candidate == target {
			found = true
		}
	}
	if !found {
		return errors.New("selection: candidate is not part of the table")
	}

	if former != nil {
		former.MergeSelected = false
	}
	// The primary's own merge control is disabled, so a selection left over
	// from before the change is meaningless.
	target.MergeSelected = false

	for _, candidate := range t.Candidates {
		candidate.Primary = candidate == target
		candidate.MergeEnabled = candidate != target
	}
	return nil
}

// Primary returns the current primary candidate, or nil.
func (t *DuplicateTable) Primary() *Candidate {
	if t == nil {
		return nil
	}
	for _, candidate := range t.Candidates {
		if candidate.Primary {
			return candidate
		}
	}
	return nil
}

// MergeTargets returns the candidates currently selected for merging into
// the primary.
func (t *DuplicateTable) MergeTargets() []*Candidate {
	if t == nil {
		return nil
	}
	var targets []*Candidate
	for _, candidate := range t.Candidates {
		if candidate.MergeSelected && candidate.MergeEnabled {
			targets = append(targets, candidate)
		}
	}
	return targets
}
