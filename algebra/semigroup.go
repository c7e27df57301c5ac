package algebra

import "github.com/katalvlaran/finitealgebra/set"

// Semigroup is a groupoid whose operation is associative.
type Semigroup[T comparable] struct {
	Groupoid[T]
}

// NewSemigroup validates closure, then associativity for every ordered
// triple, returning ErrNotClosed or ErrNotAssociative respectively.
// Complexity: O(n³) operation applications.
func NewSemigroup[T comparable](elements *set.Set[T], op BinaryOp[T]) (*Semigroup[T], error) {
	g, err := NewGroupoid(elements, op)
	if err != nil {
		return nil, err
	}
	if !g.IsAssociative() {
		return nil, ErrNotAssociative
	}

	return &Semigroup[T]{Groupoid: *g}, nil
}

// Product folds the operation over one or more elements:
// a₁ ∘ a₂ ∘ … ∘ aₙ. Associativity makes the grouping irrelevant.
// Returns ErrEmptyProduct for zero operands and ErrNotInCarrier if any
// operand is foreign.
func (s *Semigroup[T]) Product(elems ...T) (T, error) {
	var zero T
	if len(elems) == 0 {
		return zero, ErrEmptyProduct
	}
	if !s.elements.Contains(elems[0]) {
		return zero, ErrNotInCarrier
	}

	acc := elems[0]
	for _, e := range elems[1:] {
		res, err := s.Operate(acc, e)
		if err != nil {
			return zero, err
		}
		acc = res
	}

	return acc, nil
}

// Power computes aⁿ for n ≥ 1 by binary exponentiation. The zero power is
// undefined without an identity, so n = 0 yields ErrZeroPower (Monoid and
// Group redefine Power with a⁰ = e).
// Complexity: O(log n) operation applications.
func (s *Semigroup[T]) Power(a T, n uint64) (T, error) {
	var zero T
	if n == 0 {
		return zero, ErrZeroPower
	}
	if !s.elements.Contains(a) {
		return zero, ErrNotInCarrier
	}

	result := a
	current := a
	for exp := n - 1; exp > 0; exp /= 2 {
		if exp%2 == 1 {
			result = s.op(result, current)
		}
		current = s.op(current, current)
	}

	return result, nil
}

// HasIdentity reports whether some element satisfies both identity laws.
// A semigroup with an identity is promotable via NewMonoidFromSemigroup.
// Complexity: O(n²)
func (s *Semigroup[T]) HasIdentity() bool {
	_, err := s.FindIdentity()

	return err == nil
}

// FindIdentity scans for a two-sided identity, returning ErrNoIdentity
// when none exists.
// Complexity: O(n²)
func (s *Semigroup[T]) FindIdentity() (T, error) {
	elems := s.elements.Elements()
	for _, candidate := range elems {
		isIdentity := true
		for _, a := range elems {
			if s.op(candidate, a) != a || s.op(a, candidate) != a {
				isIdentity = false
				break
			}
		}
		if isIdentity {
			return candidate, nil
		}
	}

	var zero T

	return zero, ErrNoIdentity
}
