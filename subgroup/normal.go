package subgroup

import (
	"github.com/katalvlaran/finitealgebra/algebra"
	"github.com/katalvlaran/finitealgebra/set"
)

// NormalSubgroup is a subgroup N ⊲ G closed under conjugation:
// g∘n∘g⁻¹ ∈ N for every g ∈ G and n ∈ N. Equivalently gN = Ng for every
// g. Normality is what makes the quotient operation well defined.
type NormalSubgroup[T comparable] struct {
	Subgroup[T]
}

// NewNormal promotes a subgroup after verifying conjugation closure,
// returning ErrNotNormal on the first violating pair.
// Complexity: O(|G|·|N|) operation applications.
func NewNormal[T comparable](sub *Subgroup[T]) (*NormalSubgroup[T], error) {
	n := &NormalSubgroup[T]{Subgroup: *sub}
	if !n.VerifyNormal() {
		return nil, ErrNotNormal
	}

	return n, nil
}

// NewNormalFromSet verifies subset as a subgroup of parent and then as a
// normal one, surfacing whichever law fails first.
func NewNormalFromSet[T comparable](parent *algebra.Group[T], subset *set.Set[T]) (*NormalSubgroup[T], error) {
	sub, err := New(parent, subset)
	if err != nil {
		return nil, err
	}

	return NewNormal(sub)
}

// VerifyNormal checks g∘n∘g⁻¹ ∈ N for every g in the parent and n in N.
// Always true for a constructed NormalSubgroup (idempotence guarantee).
// Complexity: O(|G|·|N|)
func (n *NormalSubgroup[T]) VerifyNormal() bool {
	return IsNormal(&n.Subgroup)
}

// VerifyNormalViaCosets cross-checks normality through the coset
// equality gN = Ng for every parent element g. Must always agree with
// VerifyNormal; both are exposed so callers can assert the agreement.
// Complexity: O(|G|·|N|)
func (n *NormalSubgroup[T]) VerifyNormalViaCosets() bool {
	g := n.parent
	for _, rep := range g.Set().Elements() {
		left, err := NewCoset(g, &n.Subgroup, rep, Left)
		if err != nil {
			return false
		}
		right, err := NewCoset(g, &n.Subgroup, rep, Right)
		if err != nil {
			return false
		}
		if !left.Equal(right) {
			return false
		}
	}

	return true
}

// IsNormal reports whether sub is a normal subgroup of its parent,
// without constructing a NormalSubgroup.
// Complexity: O(|G|·|N|)
func IsNormal[T comparable](sub *Subgroup[T]) bool {
	g := sub.parent
	for _, a := range g.Set().Elements() {
		ia, err := g.Inverse(a)
		if err != nil {
			return false
		}
		for _, n := range sub.subset.Elements() {
			an, err := g.Operate(a, n)
			if err != nil {
				return false
			}
			conj, err := g.Operate(an, ia)
			if err != nil {
				return false
			}
			if !sub.subset.Contains(conj) {
				return false
			}
		}
	}

	return true
}

// TrivialNormal returns {e} as a normal subgroup; the trivial subgroup is
// normal in every group.
func TrivialNormal[T comparable](g *algebra.Group[T]) *NormalSubgroup[T] {
	n, _ := NewNormal(Trivial(g))

	return n
}

// ImproperNormal returns G itself as a normal subgroup of G.
func ImproperNormal[T comparable](g *algebra.Group[T]) *NormalSubgroup[T] {
	n, _ := NewNormal(Improper(g))

	return n
}
