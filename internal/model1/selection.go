package model1

import (
	"sort"

	"github.com/fvbommel/sortorder"
)

// SelectionState is a read-only snapshot of a table selection.
type SelectionState struct {
	SelectedIDs             []string `json:"selectedIds"`
	IsAllOtherPagesSelected bool     `json:"isAllOtherPagesSelected"`
}

// NewSelectionState returns a snapshot with ids in natural order.
func NewSelectionState(ids map[string]struct{}, allPages bool) SelectionState {
	out := make([]string, 0, len(ids))
	for id := range ids {
		out = append(out, id)
	}
	sort.Sort(sortorder.Natural(out))
	return SelectionState{SelectedIDs: out, IsAllOtherPagesSelected: allPages}
}

// Empty returns true if nothing is selected.
func (s SelectionState) Empty() bool {
	return len(s.SelectedIDs) == 0 && !s.IsAllOtherPagesSelected
}

// Has returns true if the identity is part of the snapshot.
func (s SelectionState) Has(id string) bool {
	for _, v := range s.SelectedIDs {
		if v == id {
			return true
		}
	}
	return false
}
