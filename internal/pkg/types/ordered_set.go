package types

// OrderedSet is a generic set that remembers the order in which elements were
// first inserted. Membership tests are O(1) via an index map, while the
// insertion order is kept in a slice so the set can be trimmed down to its
// most recently inserted elements without relying on map iteration order.
//
// The zero value is not usable; construct instances with NewOrderedSet.
type OrderedSet[T comparable] struct {
	index map[T]struct{} // fast membership checks
	order []T            // insertion order, oldest first
}

// NewOrderedSet creates a new OrderedSet and optionally inserts the provided
// elements, preserving their order.
func NewOrderedSet[T comparable](data ...T) *OrderedSet[T] {
	set := &OrderedSet[T]{
		index: make(map[T]struct{}, len(data)),
		order: make([]T, 0, len(data)),
	}
	set.Add(data...)
	return set
}

// Add inserts one or more elements into the set. Elements already present are
// ignored and keep their original insertion position.
func (s *OrderedSet[T]) Add(values ...T) {
	for _, val := range values {
		if _, ok := s.index[val]; ok {
			continue
		}
		s.index[val] = struct{}{}
		s.order = append(s.order, val)
	}
}

// Contains reports whether the given element is present in the set.
func (s *OrderedSet[T]) Contains(value T) bool {
	_, ok := s.index[value]
	return ok
}

// Len returns the number of elements currently in the set.
func (s *OrderedSet[T]) Len() int {
	return len(s.order)
}

// TrimOldest discards the oldest elements until at most keep remain.
// The retained elements are the most recently inserted ones, in their
// original insertion order. A keep value at or above the current size
// is a no-op.
func (s *OrderedSet[T]) TrimOldest(keep int) {
	if keep < 0 {
		keep = 0
	}
	if len(s.order) <= keep {
		return
	}

	dropped := s.order[:len(s.order)-keep]
	for _, val := range dropped {
		delete(s.index, val)
	}

	retained := make([]T, keep)
	copy(retained, s.order[len(s.order)-keep:])
	s.order = retained
}

// ToSlice returns the elements in insertion order, oldest first.
func (s *OrderedSet[T]) ToSlice() []T {
	out := make([]T, len(s.order))
	copy(out, s.order)
	return out
}
