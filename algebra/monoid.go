package algebra

import "github.com/katalvlaran/finitealgebra/set"

// Monoid is a semigroup with a validated two-sided identity. The identity
// is unique: if e and e' are both identities then e = e∘e' = e'.
type Monoid[T comparable] struct {
	Semigroup[T]
	identity T
}

// NewMonoid validates the lower levels, then checks the identity
// candidate: membership first (ErrIdentityNotInSet), then e∘a = a∘e = a
// for every a (ErrInvalidIdentity).
// Complexity: O(n³) dominated by the associativity scan.
func NewMonoid[T comparable](elements *set.Set[T], op BinaryOp[T], identity T) (*Monoid[T], error) {
	s, err := NewSemigroup(elements, op)
	if err != nil {
		return nil, err
	}
	if !s.elements.Contains(identity) {
		return nil, ErrIdentityNotInSet
	}
	for _, a := range s.elements.Elements() {
		if op(identity, a) != a || op(a, identity) != a {
			return nil, ErrInvalidIdentity
		}
	}

	return &Monoid[T]{Semigroup: *s, identity: identity}, nil
}

// NewMonoidFromSemigroup promotes a semigroup by discovering its identity,
// returning ErrNoIdentity when none exists.
func NewMonoidFromSemigroup[T comparable](s *Semigroup[T]) (*Monoid[T], error) {
	e, err := s.FindIdentity()
	if err != nil {
		return nil, err
	}

	return &Monoid[T]{Semigroup: *s, identity: e}, nil
}

// Identity returns the unique identity element.
func (m *Monoid[T]) Identity() T {
	return m.identity
}

// Power computes aⁿ by binary exponentiation, with a⁰ = e.
// Complexity: O(log n) operation applications.
func (m *Monoid[T]) Power(a T, n uint64) (T, error) {
	var zero T
	if !m.elements.Contains(a) {
		return zero, ErrNotInCarrier
	}
	if n == 0 {
		return m.identity, nil
	}

	result := m.identity
	current := a
	for exp := n; exp > 0; exp /= 2 {
		if exp%2 == 1 {
			result = m.op(result, current)
		}
		current = m.op(current, current)
	}

	return result, nil
}

// IsInvertible reports whether a has a two-sided inverse in the monoid.
// Complexity: O(n)
func (m *Monoid[T]) IsInvertible(a T) bool {
	if !m.elements.Contains(a) {
		return false
	}
	for _, b := range m.elements.Elements() {
		if m.op(a, b) == m.identity && m.op(b, a) == m.identity {
			return true
		}
	}

	return false
}

// Inverse searches for the two-sided inverse of a. The inverse, when it
// exists, is unique: b = b∘e = b∘(a∘b') = (b∘a)∘b' = e∘b' = b'.
// Returns ErrNotInCarrier for a foreign element and ErrNotInvertible when
// no inverse exists.
// Complexity: O(n)
func (m *Monoid[T]) Inverse(a T) (T, error) {
	var zero T
	if !m.elements.Contains(a) {
		return zero, ErrNotInCarrier
	}
	for _, b := range m.elements.Elements() {
		if m.op(a, b) == m.identity && m.op(b, a) == m.identity {
			return b, nil
		}
	}

	return zero, ErrNotInvertible
}

// InvertibleElements returns the set of elements with a two-sided
// inverse — the unit group of the monoid.
// Complexity: O(n²)
func (m *Monoid[T]) InvertibleElements() *set.Set[T] {
	units := set.New[T]()
	for _, a := range m.elements.Elements() {
		if m.IsInvertible(a) {
			units.Add(a)
		}
	}

	return units
}
