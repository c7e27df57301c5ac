package subgroup

import (
	"github.com/katalvlaran/finitealgebra/algebra"
	"github.com/katalvlaran/finitealgebra/set"
)

// Subgroup is a validated subset H of a parent group's carrier that forms
// a group under the parent's operation. It holds a non-owning reference
// to the parent and must not outlive it.
type Subgroup[T comparable] struct {
	parent *algebra.Group[T]
	subset *set.Set[T]
}

// New verifies that subset forms a subgroup of parent and returns it.
//
// Checks, in order:
//  1. subset is nonempty                       → ErrEmptySubset
//  2. subset ⊆ parent carrier                  → ErrNotInParent
//  3. a∘b⁻¹ ∈ subset for every pair a, b       → ErrNotSubgroup
//
// The subset is cloned on the way in.
// Complexity: O(|H|²) operation applications.
func New[T comparable](parent *algebra.Group[T], subset *set.Set[T]) (*Subgroup[T], error) {
	h := &Subgroup[T]{parent: parent, subset: subset.Clone()}
	if err := h.check(); err != nil {
		return nil, err
	}

	return h, nil
}

// Trivial returns the trivial subgroup {e} of g.
func Trivial[T comparable](g *algebra.Group[T]) *Subgroup[T] {
	// {e} always satisfies the criterion; New cannot fail here.
	h, _ := New(g, set.New(g.Identity()))

	return h
}

// Improper returns the improper subgroup of g: the whole group.
func Improper[T comparable](g *algebra.Group[T]) *Subgroup[T] {
	h, _ := New(g, g.Set())

	return h
}

// check runs the full subgroup validation, returning the first violation.
func (h *Subgroup[T]) check() error {
	if h.subset.IsEmpty() {
		return ErrEmptySubset
	}
	if !h.subset.IsSubsetOf(h.parent.Set()) {
		return ErrNotInParent
	}

	elems := h.subset.Elements()
	for _, a := range elems {
		for _, b := range elems {
			ib, err := h.parent.Inverse(b)
			if err != nil {
				return ErrNotInParent
			}
			prod, err := h.parent.Operate(a, ib)
			if err != nil {
				return ErrNotInParent
			}
			if !h.subset.Contains(prod) {
				return ErrNotSubgroup
			}
		}
	}

	return nil
}

// VerifyCriterion re-runs the subgroup criterion a∘b⁻¹ ∈ H. Always true
// for a constructed Subgroup; exposed for the idempotence guarantee.
// Complexity: O(|H|²)
func (h *Subgroup[T]) VerifyCriterion() bool {
	return h.check() == nil
}

// VerifyFiniteCriterion checks the closure-only variant sufficient for
// finite carriers: H nonempty, H ⊆ G, and a∘b ∈ H for every pair.
// Complexity: O(|H|²)
func (h *Subgroup[T]) VerifyFiniteCriterion() bool {
	if h.subset.IsEmpty() || !h.subset.IsSubsetOf(h.parent.Set()) {
		return false
	}

	elems := h.subset.Elements()
	for _, a := range elems {
		for _, b := range elems {
			prod, err := h.parent.Operate(a, b)
			if err != nil || !h.subset.Contains(prod) {
				return false
			}
		}
	}

	return true
}

// Parent returns the parent group.
func (h *Subgroup[T]) Parent() *algebra.Group[T] {
	return h.parent
}

// Elements returns a copy of the subgroup's element set.
func (h *Subgroup[T]) Elements() *set.Set[T] {
	return h.subset.Clone()
}

// Identity returns the identity element, shared with the parent group.
func (h *Subgroup[T]) Identity() T {
	return h.parent.Identity()
}

// Contains reports whether e belongs to the subgroup.
func (h *Subgroup[T]) Contains(e T) bool {
	return h.subset.Contains(e)
}

// Order returns |H|.
func (h *Subgroup[T]) Order() int {
	return h.subset.Len()
}

// Equal reports whether h and other are the same subgroup of the same
// parent group.
func (h *Subgroup[T]) Equal(other *Subgroup[T]) bool {
	return h.parent == other.parent && h.subset.Equal(other.subset)
}

// Intersection returns the subgroup H₁ ∩ H₂. The intersection of two
// subgroups is itself a subgroup, so validation cannot fail once the
// parents match.
func Intersection[T comparable](h1, h2 *Subgroup[T]) (*Subgroup[T], error) {
	if h1.parent != h2.parent {
		return nil, ErrDifferentParents
	}

	return New(h1.parent, h1.subset.Intersection(h2.subset))
}

// Product returns the element set H₁H₂ = {h₁∘h₂ | h₁ ∈ H₁, h₂ ∈ H₂}.
// The product of two subgroups is not a subgroup in general; it is one
// exactly when H₁H₂ = H₂H₁ (see IsProductSubgroup).
// Complexity: O(|H₁|·|H₂|)
func Product[T comparable](h1, h2 *Subgroup[T]) (*set.Set[T], error) {
	if h1.parent != h2.parent {
		return nil, ErrDifferentParents
	}

	prod := set.New[T]()
	for _, a := range h1.subset.Elements() {
		for _, b := range h2.subset.Elements() {
			res, err := h1.parent.Operate(a, b)
			if err != nil {
				return nil, err
			}
			prod.Add(res)
		}
	}

	return prod, nil
}

// IsProductSubgroup reports whether H₁H₂ forms a subgroup, which holds
// exactly when H₁H₂ = H₂H₁ and the product satisfies the criterion.
func IsProductSubgroup[T comparable](h1, h2 *Subgroup[T]) (bool, error) {
	p12, err := Product(h1, h2)
	if err != nil {
		return false, err
	}
	p21, err := Product(h2, h1)
	if err != nil {
		return false, err
	}
	if !p12.Equal(p21) {
		return false, nil
	}

	_, err = New(h1.parent, p12)

	return err == nil, nil
}
