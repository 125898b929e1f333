package selection

// Service owns the explicit selection set
type Service struct {
	set Set
}

// NewService creates a new selection service
func NewService() *Service {
	return &Service{set: make(Set)}
}

// Toggle adds id if absent and removes it if present. It returns true when
// id ends up selected.
func (s *Service) Toggle(id int64) bool {
	if s.set.Has(id) {
		delete(s.set, id)
		return false
	}
	s.set[id] = struct{}{}
	return true
}

// Set returns a copy of the explicit selection
func (s *Service) Set() Set {
	return s.set.Clone()
}

// GetCount returns the number of selected items
func (s *Service) GetCount() int {
	return len(s.set)
}

// Resolve computes the operand for an action against the highlighted row
func (s *Service) Resolve(highlighted int64, hasHighlight, preferHighlighted bool) Selected {
	return Resolve(s.set, highlighted, hasHighlight, preferHighlighted)
}

// RemoveFromSelection drops ids, e.g. after they were deleted
func (s *Service) RemoveFromSelection(ids []int64) {
	for _, id := range ids {
		delete(s.set, id)
	}
}

// Retain keeps only the ids for which keep returns true
func (s *Service) Retain(keep func(id int64) bool) {
	for id := range s.set {
		if !keep(id) {
			delete(s.set, id)
		}
	}
}

