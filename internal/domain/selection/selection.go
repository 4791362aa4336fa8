package selection

import (
	"sort"
	"sync"
)

// Set holds the document identifiers a user has picked for batch action.
// It is scoped to the currently visible, filtered list: SelectAll replaces
// the set with exactly what the caller can see, never hidden rows.
type Set struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

func NewSet() *Set {
	return &Set{ids: make(map[string]struct{})}
}

// SelectAll replaces the selection with exactly visibleIDs.
func (s *Set) SelectAll(visibleIDs []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = make(map[string]struct{}, len(visibleIDs))
	for _, id := range visibleIDs {
		s.ids[id] = struct{}{}
	}
}

// Toggle adds id if absent, removes it if present.
func (s *Set) Toggle(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return
	}
	s.ids[id] = struct{}{}
}

// IsAllSelected reports whether the selection equals visibleIDs exactly,
// order-independent.
func (s *Set) IsAllSelected(visibleIDs []string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[string]struct{}, len(visibleIDs))
	for _, id := range visibleIDs {
		seen[id] = struct{}{}
	}
	if len(seen) != len(s.ids) {
		return false
	}
	for id := range s.ids {
		if _, ok := seen[id]; !ok {
			return false
		}
	}
	return true
}

func (s *Set) Contains(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.ids[id]
	return ok
}

// IDs returns a sorted copy of the selection.
func (s *Set) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

// Remove drops the given ids from the selection. The batch orchestrator calls
// this with exactly the applied ids so skipped and failed rows stay selected
// for retry or inspection.
func (s *Set) Remove(ids ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		delete(s.ids, id)
	}
}

// Reconcile intersects the selection with existingIDs, dropping ids that no
// longer appear in the document collection after a list refresh.
func (s *Set) Reconcile(existingIDs []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	keep := make(map[string]struct{}, len(existingIDs))
	for _, id := range existingIDs {
		keep[id] = struct{}{}
	}
	for id := range s.ids {
		if _, ok := keep[id]; !ok {
			delete(s.ids, id)
		}
	}
}

// Clear empties the selection.
func (s *Set) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = make(map[string]struct{})
}

// Registry hands out one selection set per user session.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Set
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Set)}
}

// Session returns the set for a session id, creating it on first use.
func (r *Registry) Session(id string) *Set {
	r.mu.Lock()
	defer r.mu.Unlock()
	set, ok := r.sessions[id]
	if !ok {
		set = NewSet()
		r.sessions[id] = set
	}
	return set
}

// Drop discards a session's selection entirely.
func (r *Registry) Drop(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}
