package quotient

import (
	"errors"

	"github.com/katalvlaran/finitealgebra/algebra"
	"github.com/katalvlaran/finitealgebra/subgroup"
)

var (
	// ErrForeignCoset indicates an operand coset that is not part of this
	// factor group's partition.
	ErrForeignCoset = errors.New("quotient: coset does not belong to this factor group")

	// ErrNotInCarrier indicates a query element outside the parent carrier.
	ErrNotInCarrier = errors.New("quotient: element not in parent carrier")
)

// FactorGroup is the quotient G/N. Its elements are the distinct left
// cosets of N in G (equal to the right cosets, since N is normal),
// computed once at construction together with an element→coset index.
type FactorGroup[T comparable] struct {
	parent *algebra.Group[T]
	normal *subgroup.NormalSubgroup[T]
	cosets []*subgroup.Coset[T]
	index  map[T]int // parent element → position in cosets
}

// New builds the factor group G/N. Given a validated group and normal
// subgroup the construction always succeeds.
// Complexity: O(|G|·|N|) operation applications for the partition, plus
// O(|G|) for the index.
func New[T comparable](parent *algebra.Group[T], normal *subgroup.NormalSubgroup[T]) (*FactorGroup[T], error) {
	cosets, err := subgroup.FindAllCosets(&normal.Subgroup)
	if err != nil {
		return nil, err
	}

	index := make(map[T]int, parent.Order())
	for i, c := range cosets {
		for _, e := range c.Elements().Elements() {
			index[e] = i
		}
	}

	return &FactorGroup[T]{parent: parent, normal: normal, cosets: cosets, index: index}, nil
}

// Parent returns the parent group G.
func (f *FactorGroup[T]) Parent() *algebra.Group[T] {
	return f.parent
}

// Normal returns the normal subgroup N.
func (f *FactorGroup[T]) Normal() *subgroup.NormalSubgroup[T] {
	return f.normal
}

// Cosets returns the partition underlying the factor group.
func (f *FactorGroup[T]) Cosets() []*subgroup.Coset[T] {
	out := make([]*subgroup.Coset[T], len(f.cosets))
	copy(out, f.cosets)

	return out
}

// Size returns |G/N| = [G : N].
func (f *FactorGroup[T]) Size() int {
	return len(f.cosets)
}

// CosetOf returns the partition coset containing e.
func (f *FactorGroup[T]) CosetOf(e T) (*subgroup.Coset[T], error) {
	i, ok := f.index[e]
	if !ok {
		return nil, ErrNotInCarrier
	}

	return f.cosets[i], nil
}

// resolve maps an operand coset to its position in the partition and
// rejects cosets from another quotient.
func (f *FactorGroup[T]) resolve(c *subgroup.Coset[T]) (int, error) {
	i, ok := f.index[c.Representative()]
	if !ok || !c.Equal(f.cosets[i]) {
		return 0, ErrForeignCoset
	}

	return i, nil
}

// Operate applies the induced operation: pick a representative from each
// coset, multiply in the parent, and look up the coset containing the
// product. Representative choice does not affect the result because N is
// normal.
// Complexity: O(1) beyond the parent operation.
func (f *FactorGroup[T]) Operate(a, b *subgroup.Coset[T]) (*subgroup.Coset[T], error) {
	if _, err := f.resolve(a); err != nil {
		return nil, err
	}
	if _, err := f.resolve(b); err != nil {
		return nil, err
	}

	prod, err := f.parent.Operate(a.Representative(), b.Representative())
	if err != nil {
		return nil, err
	}

	return f.CosetOf(prod)
}

// Identity returns the identity of G/N: the coset N itself, found as the
// coset containing the parent identity.
func (f *FactorGroup[T]) Identity() *subgroup.Coset[T] {
	c, _ := f.CosetOf(f.parent.Identity())

	return c
}

// Inverse returns (aN)⁻¹ = a⁻¹N.
func (f *FactorGroup[T]) Inverse(c *subgroup.Coset[T]) (*subgroup.Coset[T], error) {
	if _, err := f.resolve(c); err != nil {
		return nil, err
	}

	inv, err := f.parent.Inverse(c.Representative())
	if err != nil {
		return nil, err
	}

	return f.CosetOf(inv)
}

// Verify exhaustively re-checks the group laws on the quotient: identity
// behavior, inverse behavior and associativity over every coset triple.
// A self-check, not required for construction.
// Complexity: O(k³) coset operations, k = Size().
func (f *FactorGroup[T]) Verify() bool {
	id := f.Identity()

	for _, c := range f.cosets {
		l, err := f.Operate(id, c)
		if err != nil || !l.Equal(c) {
			return false
		}
		r, err := f.Operate(c, id)
		if err != nil || !r.Equal(c) {
			return false
		}
	}

	for _, c := range f.cosets {
		inv, err := f.Inverse(c)
		if err != nil {
			return false
		}
		l, err := f.Operate(c, inv)
		if err != nil || !l.Equal(id) {
			return false
		}
		r, err := f.Operate(inv, c)
		if err != nil || !r.Equal(id) {
			return false
		}
	}

	for _, a := range f.cosets {
		for _, b := range f.cosets {
			for _, c := range f.cosets {
				ab, err := f.Operate(a, b)
				if err != nil {
					return false
				}
				left, err := f.Operate(ab, c)
				if err != nil {
					return false
				}
				bc, err := f.Operate(b, c)
				if err != nil {
					return false
				}
				right, err := f.Operate(a, bc)
				if err != nil || !left.Equal(right) {
					return false
				}
			}
		}
	}

	return true
}

// CheckRepresentativeIndependence verifies the well-definedness of the
// induced operation: for every pair of cosets A, B and every choice of
// representatives a ∈ A, b ∈ B, the product a∘b lands in the same coset.
// Holds exactly because N is normal.
// Complexity: O(k²·|N|²) parent operations.
func (f *FactorGroup[T]) CheckRepresentativeIndependence() bool {
	for _, a := range f.cosets {
		for _, b := range f.cosets {
			expected, err := f.Operate(a, b)
			if err != nil {
				return false
			}

			for _, x := range a.Elements().Elements() {
				for _, y := range b.Elements().Elements() {
					prod, err := f.parent.Operate(x, y)
					if err != nil {
						return false
					}
					got, err := f.CosetOf(prod)
					if err != nil || !got.Equal(expected) {
						return false
					}
				}
			}
		}
	}

	return true
}
