package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// IsSingle returns true if the slice has exactly one element.
func IsSingle[S ~[]E, E any](s S) bool {
	return len(s) == 1
}

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// OrderedSet collects comparable values once each, remembering insertion order.
type OrderedSet[E comparable] struct {
	seen  map[E]struct{}
	items []E
}

// Add appends v unless it was added before. Returns true if v was new.
func (s *OrderedSet[E]) Add(v E) bool {
	if s.seen == nil {
		s.seen = make(map[E]struct{})
	}

	if _, ok := s.seen[v]; ok {
		return false
	}

	s.seen[v] = struct{}{}
	s.items = append(s.items, v)

	return true
}

// Items returns the collected values in insertion order.
func (s *OrderedSet[E]) Items() []E {
	return s.items
}
