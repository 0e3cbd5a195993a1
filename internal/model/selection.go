package model

import (
	"sync"

	"github.com/b3/b3t/internal/model1"
)

// SelectionStore tracks which rows are checked, by identity.
type SelectionStore struct {
	policy    SelectionPolicy
	idField   string
	rows      model1.Rows
	seen      map[string]struct{}
	selected  map[string]struct{}
	allPages  bool
	listeners []SelectionListener
	mx        sync.RWMutex
}

// NewSelectionStore returns an empty store.
func NewSelectionStore(policy SelectionPolicy, idField string) *SelectionStore {
	if idField == "" {
		idField = model1.DefaultIdentityField
	}
	return &SelectionStore{
		policy:   policy,
		idField:  idField,
		seen:     make(map[string]struct{}),
		selected: make(map[string]struct{}),
	}
}

// Policy returns the store persistence policy.
func (s *SelectionStore) Policy() SelectionPolicy {
	return s.policy
}

// IdentityField returns the field used for membership.
func (s *SelectionStore) IdentityField() string {
	return s.idField
}

// AddListener registers a selection listener.
func (s *SelectionStore) AddListener(l SelectionListener) {
	s.mx.Lock()
	defer s.mx.Unlock()
	s.listeners = append(s.listeners, l)
}

// RemoveListener unregisters a selection listener.
func (s *SelectionStore) RemoveListener(l SelectionListener) {
	s.mx.Lock()
	defer s.mx.Unlock()

	for i, lis := range s.listeners {
		if lis == l {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}

// SetRows installs a freshly loaded page. Unless keep is set the selection is
// cleared. Kept single page selections are pruned to the new rows.
func (s *SelectionStore) SetRows(rows model1.Rows, keep bool) {
	s.mx.Lock()
	s.rows = rows
	if s.policy == SinglePage {
		s.seen = make(map[string]struct{}, len(rows))
	}
	for _, id := range rows.Identities(s.idField) {
		if id != "" {
			s.seen[id] = struct{}{}
		}
	}

	switch {
	case !keep:
		s.reset()
	case s.policy == SinglePage:
		for id := range s.selected {
			if _, ok := s.seen[id]; !ok {
				delete(s.selected, id)
			}
		}
	case s.allPages:
		for _, id := range rows.Selectable(s.idField) {
			s.selected[id] = struct{}{}
		}
	}
	s.mx.Unlock()

	s.notify()
}

// SelectOne toggles a row membership. Unknown or disabled rows are ignored.
// It returns true if the selection changed.
func (s *SelectionStore) SelectOne(id string) bool {
	s.mx.Lock()
	if _, ok := s.seen[id]; !ok || s.isDisabled(id) {
		s.mx.Unlock()
		return false
	}
	if _, ok := s.selected[id]; ok {
		delete(s.selected, id)
		s.allPages = false
	} else {
		s.selected[id] = struct{}{}
	}
	s.mx.Unlock()

	s.notify()
	return true
}

// SelectAll toggles the visible page. In single page mode it selects every
// enabled row or clears everything when they already are. In cross page mode
// it adds or removes the visible identities from the global set.
func (s *SelectionStore) SelectAll() {
	s.mx.Lock()
	ids := s.rows.Selectable(s.idField)
	if len(ids) == 0 {
		s.mx.Unlock()
		return
	}

	all := s.containsAll(ids)
	switch {
	case s.policy == SinglePage && all:
		s.reset()
	case s.policy == SinglePage:
		s.selected = make(map[string]struct{}, len(ids))
		for _, id := range ids {
			s.selected[id] = struct{}{}
		}
	case all:
		for _, id := range ids {
			delete(s.selected, id)
		}
		s.allPages = false
	default:
		for _, id := range ids {
			s.selected[id] = struct{}{}
		}
	}
	s.mx.Unlock()

	s.notify()
}

// SelectAllPages marks every page selected. Pages fetched later resolve their
// identities as they arrive. In single page mode this selects the visible rows.
func (s *SelectionStore) SelectAllPages() {
	s.mx.Lock()
	if s.policy == CrossPage {
		s.allPages = true
	} else {
		s.selected = make(map[string]struct{})
	}
	for _, id := range s.rows.Selectable(s.idField) {
		s.selected[id] = struct{}{}
	}
	s.mx.Unlock()

	s.notify()
}

// Clear drops the whole selection.
func (s *SelectionStore) Clear() {
	s.mx.Lock()
	s.reset()
	s.mx.Unlock()

	s.notify()
}

// IsSelected returns true if the identity is checked.
func (s *SelectionStore) IsSelected(id string) bool {
	s.mx.RLock()
	defer s.mx.RUnlock()

	_, ok := s.selected[id]
	return ok
}

// AllSelected returns true if every enabled visible row is checked.
func (s *SelectionStore) AllSelected() bool {
	s.mx.RLock()
	defer s.mx.RUnlock()

	ids := s.rows.Selectable(s.idField)
	return len(ids) > 0 && s.containsAll(ids)
}

// Count returns the number of selected identities.
func (s *SelectionStore) Count() int {
	s.mx.RLock()
	defer s.mx.RUnlock()
	return len(s.selected)
}

// Snapshot returns a read-only copy of the selection.
func (s *SelectionStore) Snapshot() model1.SelectionState {
	s.mx.RLock()
	defer s.mx.RUnlock()
	return model1.NewSelectionState(s.selected, s.allPages)
}

// SelectedRows returns the loaded rows that are selected.
func (s *SelectionStore) SelectedRows() model1.Rows {
	s.mx.RLock()
	defer s.mx.RUnlock()

	out := make(model1.Rows, 0, len(s.selected))
	for _, r := range s.rows {
		if _, ok := s.selected[r.Identity(s.idField)]; ok {
			out = append(out, r)
		}
	}
	return out
}

func (s *SelectionStore) reset() {
	s.selected = make(map[string]struct{})
	s.allPages = false
}

func (s *SelectionStore) containsAll(ids []string) bool {
	for _, id := range ids {
		if _, ok := s.selected[id]; !ok {
			return false
		}
	}
	return true
}

func (s *SelectionStore) isDisabled(id string) bool {
	r, _, ok := s.rows.Find(s.idField, id)
	return ok && r.Disabled()
}

func (s *SelectionStore) notify() {
	s.mx.RLock()
	listeners := make([]SelectionListener, len(s.listeners))
	copy(listeners, s.listeners)
	snap := model1.NewSelectionState(s.selected, s.allPages)
	s.mx.RUnlock()

	for _, l := range listeners {
		l.SelectionChanged(snap)
	}
}
