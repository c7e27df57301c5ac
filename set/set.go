package set

// Set is a finite collection of unique elements of a comparable type.
// The zero value is not usable; construct with New.
type Set[T comparable] struct {
	items map[T]struct{}
}

// New creates a Set holding the given elements (duplicates collapse).
// Complexity: O(len(elems))
func New[T comparable](elems ...T) *Set[T] {
	s := &Set[T]{items: make(map[T]struct{}, len(elems))}
	for _, e := range elems {
		s.items[e] = struct{}{}
	}

	return s
}

// FromSlice builds a Set from a slice, collapsing duplicates.
// Complexity: O(len(elems))
func FromSlice[T comparable](elems []T) *Set[T] {
	return New(elems...)
}

// Add inserts e into s. Inserting an existing element is a no-op.
func (s *Set[T]) Add(e T) {
	s.items[e] = struct{}{}
}

// AddAll inserts every element of elems into s.
func (s *Set[T]) AddAll(elems ...T) {
	for _, e := range elems {
		s.items[e] = struct{}{}
	}
}

// Remove deletes e from s; removing an absent element is a no-op.
func (s *Set[T]) Remove(e T) {
	delete(s.items, e)
}

// Contains reports whether e is a member of s.
func (s *Set[T]) Contains(e T) bool {
	_, ok := s.items[e]

	return ok
}

// Len returns the number of elements in s.
func (s *Set[T]) Len() int {
	return len(s.items)
}

// IsEmpty reports whether s has no elements.
func (s *Set[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Elements returns a snapshot slice of the members of s.
// The order is arbitrary; callers needing a stable ordering must
// capture one slice and keep it (see cayley.New).
func (s *Set[T]) Elements() []T {
	out := make([]T, 0, len(s.items))
	for e := range s.items {
		out = append(out, e)
	}

	return out
}

// ForEach invokes fn for every element of s, stopping early if fn
// returns false. Iteration order is arbitrary.
func (s *Set[T]) ForEach(fn func(e T) bool) {
	for e := range s.items {
		if !fn(e) {
			return
		}
	}
}

// Clone returns an independent copy of s.
// Complexity: O(|s|)
func (s *Set[T]) Clone() *Set[T] {
	c := &Set[T]{items: make(map[T]struct{}, len(s.items))}
	for e := range s.items {
		c.items[e] = struct{}{}
	}

	return c
}

// Equal reports whether s and other contain exactly the same elements.
// Complexity: O(|s|)
func (s *Set[T]) Equal(other *Set[T]) bool {
	if len(s.items) != len(other.items) {
		return false
	}
	for e := range s.items {
		if _, ok := other.items[e]; !ok {
			return false
		}
	}

	return true
}

// IsSubsetOf reports whether every element of s is also in other.
// Complexity: O(|s|)
func (s *Set[T]) IsSubsetOf(other *Set[T]) bool {
	if len(s.items) > len(other.items) {
		return false
	}
	for e := range s.items {
		if _, ok := other.items[e]; !ok {
			return false
		}
	}

	return true
}
