package algebra

import "github.com/katalvlaran/finitealgebra/set"

// Group is a monoid in which every element has a validated two-sided
// inverse. Inverses are resolved through a table precomputed at
// construction, so Inverse is O(1).
//
// Standard consequences of the laws (guaranteed, not re-checked):
// uniqueness of the identity and of each inverse, (a⁻¹)⁻¹ = a, and
// (a∘b)⁻¹ = b⁻¹∘a⁻¹.
type Group[T comparable] struct {
	Monoid[T]
	inverses map[T]T
}

// NewGroup validates the lower levels, then every supplied inverse:
// membership first (ErrInverseNotInSet), then a∘a⁻¹ = a⁻¹∘a = e
// (ErrInvalidInverse). On success the full inverse table is stored.
// Complexity: O(n³) dominated by the associativity scan; the inverse
// checks themselves are O(n).
func NewGroup[T comparable](elements *set.Set[T], op BinaryOp[T], identity T, inv InverseFn[T]) (*Group[T], error) {
	m, err := NewMonoid(elements, op, identity)
	if err != nil {
		return nil, err
	}

	inverses := make(map[T]T, m.elements.Len())
	for _, a := range m.elements.Elements() {
		ia := inv(a)
		if !m.elements.Contains(ia) {
			return nil, ErrInverseNotInSet
		}
		if op(a, ia) != identity || op(ia, a) != identity {
			return nil, ErrInvalidInverse
		}
		inverses[a] = ia
	}

	return &Group[T]{Monoid: *m, inverses: inverses}, nil
}

// NewGroupFromMonoid promotes a monoid whose every element is invertible,
// discovering inverses by search. Returns ErrNotInvertible if any element
// has none.
// Complexity: O(n²)
func NewGroupFromMonoid[T comparable](m *Monoid[T]) (*Group[T], error) {
	inverses := make(map[T]T, m.elements.Len())
	for _, a := range m.elements.Elements() {
		ia, err := m.Inverse(a)
		if err != nil {
			return nil, ErrNotInvertible
		}
		inverses[a] = ia
	}

	return &Group[T]{Monoid: *m, inverses: inverses}, nil
}

// Inverse returns a⁻¹ from the precomputed table.
// Complexity: O(1)
func (g *Group[T]) Inverse(a T) (T, error) {
	ia, ok := g.inverses[a]
	if !ok {
		var zero T

		return zero, ErrNotInCarrier
	}

	return ia, nil
}

// Power computes aⁿ for signed n via binary exponentiation; negative n
// inverts first: a⁻ⁿ = (a⁻¹)ⁿ. The magnitude is taken in uint64 so the
// full int64 range is valid, including math.MinInt64 whose negation
// does not fit in int64.
// Complexity: O(log |n|) operation applications.
func (g *Group[T]) Power(a T, n int64) (T, error) {
	var zero T
	if !g.elements.Contains(a) {
		return zero, ErrNotInCarrier
	}
	if n == 0 {
		return g.identity, nil
	}

	base := a
	exp := uint64(n)
	if n < 0 {
		base = g.inverses[a]
		exp = uint64(-(n + 1)) + 1
	}

	result := g.identity
	current := base
	for ; exp > 0; exp /= 2 {
		if exp%2 == 1 {
			result = g.op(result, current)
		}
		current = g.op(current, current)
	}

	return result, nil
}

// Divide computes a / b = a ∘ b⁻¹.
func (g *Group[T]) Divide(a, b T) (T, error) {
	ib, err := g.Inverse(b)
	if err != nil {
		return ib, err
	}

	return g.Operate(a, ib)
}

// LeftDivide computes b \ a = b⁻¹ ∘ a.
func (g *Group[T]) LeftDivide(a, b T) (T, error) {
	ib, err := g.Inverse(b)
	if err != nil {
		return ib, err
	}

	return g.Operate(ib, a)
}

// IsAbelian reports whether the group is commutative, by exhaustive scan.
// Complexity: O(n²)
func (g *Group[T]) IsAbelian() bool {
	return g.IsCommutative()
}
