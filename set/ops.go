package set

// This file implements the classic binary set algebra. Every operation
// returns a fresh Set and leaves its operands untouched.

// Union returns a new Set with every element of s and other.
// Complexity: O(|s| + |other|)
func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	out := &Set[T]{items: make(map[T]struct{}, len(s.items)+len(other.items))}
	for e := range s.items {
		out.items[e] = struct{}{}
	}
	for e := range other.items {
		out.items[e] = struct{}{}
	}

	return out
}

// Intersection returns a new Set with the elements present in both s and other.
// Complexity: O(min(|s|, |other|))
func (s *Set[T]) Intersection(other *Set[T]) *Set[T] {
	small, large := s, other
	if len(other.items) < len(s.items) {
		small, large = other, s
	}

	out := &Set[T]{items: make(map[T]struct{})}
	for e := range small.items {
		if _, ok := large.items[e]; ok {
			out.items[e] = struct{}{}
		}
	}

	return out
}

// Difference returns a new Set with the elements of s not present in other.
// Complexity: O(|s|)
func (s *Set[T]) Difference(other *Set[T]) *Set[T] {
	out := &Set[T]{items: make(map[T]struct{})}
	for e := range s.items {
		if _, ok := other.items[e]; !ok {
			out.items[e] = struct{}{}
		}
	}

	return out
}

// SymmetricDifference returns a new Set with the elements present in
// exactly one of s and other.
// Complexity: O(|s| + |other|)
func (s *Set[T]) SymmetricDifference(other *Set[T]) *Set[T] {
	out := &Set[T]{items: make(map[T]struct{})}
	for e := range s.items {
		if _, ok := other.items[e]; !ok {
			out.items[e] = struct{}{}
		}
	}
	for e := range other.items {
		if _, ok := s.items[e]; !ok {
			out.items[e] = struct{}{}
		}
	}

	return out
}

// Filter returns a new Set holding the elements of s that satisfy keep.
// Complexity: O(|s|)
func (s *Set[T]) Filter(keep func(e T) bool) *Set[T] {
	out := &Set[T]{items: make(map[T]struct{})}
	for e := range s.items {
		if keep(e) {
			out.items[e] = struct{}{}
		}
	}

	return out
}
