package ecs

// SparseSet stores one component value per entity slot. Values are kept as
// `any` holding a *T so callers can mutate them in place.
type SparseSet struct {
	denseIDs    []entityID
	denseValues []any
	sparse      []int
}

// Has returns true if the slot id exists in the set.
func (s *SparseSet) Has(id entityID) bool {
	if s == nil || id == 0 || int(id-1) >= len(s.sparse) {
		return false
	}
	idx := s.sparse[id-1]
	return idx >= 0 && idx < len(s.denseIDs) && s.denseIDs[idx] == id
}

// Get returns the component for id, or nil.
func (s *SparseSet) Get(id entityID) any {
	if !s.Has(id) {
		return nil
	}
	return s.denseValues[s.sparse[id-1]]
}

// Set inserts or replaces the component for id.
func (s *SparseSet) Set(id entityID, v any) {
	if s == nil || id == 0 {
		return
	}
	for int(id) > len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	if s.Has(id) {
		s.denseValues[s.sparse[id-1]] = v
		return
	}
	s.denseIDs = append(s.denseIDs, id)
	s.denseValues = append(s.denseValues, v)
	s.sparse[id-1] = len(s.denseIDs) - 1
}

// Remove deletes the component for id if present.
func (s *SparseSet) Remove(id entityID) bool {
	if !s.Has(id) {
		return false
	}
	idx := s.sparse[id-1]
	last := len(s.denseIDs) - 1
	lastID := s.denseIDs[last]

	s.denseIDs[idx] = lastID
	s.denseValues[idx] = s.denseValues[last]
	s.sparse[lastID-1] = idx

	s.denseIDs = s.denseIDs[:last]
	s.denseValues = s.denseValues[:last]
	s.sparse[id-1] = -1
	return true
}

// Len returns the number of stored components.
func (s *SparseSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.denseIDs)
}

// ids returns a snapshot of the dense id list, safe to range over while the
// set is being mutated.
func (s *SparseSet) ids() []entityID {
	if s == nil || len(s.denseIDs) == 0 {
		return nil
	}
	return append([]entityID(nil), s.denseIDs...)
}
