package subgroup

import (
	"github.com/katalvlaran/finitealgebra/algebra"
	"github.com/katalvlaran/finitealgebra/set"
)

// Side selects which translate of the subgroup a coset is.
type Side int

const (
	// Left coset: g∘H = {g∘h | h ∈ H}.
	Left Side = iota

	// Right coset: H∘g = {h∘g | h ∈ H}.
	Right
)

// String returns "left" or "right".
func (s Side) String() string {
	if s == Right {
		return "right"
	}

	return "left"
}

// Coset is a one-sided translate of a subgroup by a representative.
// The element set is derived once at construction and never mutated.
//
// Properties guaranteed by construction: |gH| = |H|, and any two cosets
// of the same subgroup are either equal or disjoint.
type Coset[T comparable] struct {
	group    *algebra.Group[T]
	sub      *Subgroup[T]
	rep      T
	side     Side
	elements *set.Set[T]
}

// NewCoset builds the coset of sub with the given representative and
// side. Returns ErrNotInCarrier if the representative is outside the
// parent carrier.
// Complexity: O(|H|)
func NewCoset[T comparable](group *algebra.Group[T], sub *Subgroup[T], rep T, side Side) (*Coset[T], error) {
	if !group.Contains(rep) {
		return nil, ErrNotInCarrier
	}

	elements := set.New[T]()
	for _, h := range sub.subset.Elements() {
		var (
			e   T
			err error
		)
		if side == Left {
			e, err = group.Operate(rep, h)
		} else {
			e, err = group.Operate(h, rep)
		}
		if err != nil {
			return nil, err
		}
		elements.Add(e)
	}

	return &Coset[T]{group: group, sub: sub, rep: rep, side: side, elements: elements}, nil
}

// Representative returns the element the coset was built from. Different
// representatives may build equal cosets; use Equal for comparison.
func (c *Coset[T]) Representative() T {
	return c.rep
}

// Side returns which translate this coset is.
func (c *Coset[T]) Side() Side {
	return c.side
}

// Subgroup returns the subgroup the coset translates.
func (c *Coset[T]) Subgroup() *Subgroup[T] {
	return c.sub
}

// Contains reports whether e belongs to the coset.
func (c *Coset[T]) Contains(e T) bool {
	return c.elements.Contains(e)
}

// Len returns the coset size, always |H|.
func (c *Coset[T]) Len() int {
	return c.elements.Len()
}

// Elements returns a copy of the coset's element set.
func (c *Coset[T]) Elements() *set.Set[T] {
	return c.elements.Clone()
}

// Equal reports whether two cosets hold exactly the same elements.
// Equality is a property of the derived sets alone; the representatives
// that built them are irrelevant.
func (c *Coset[T]) Equal(other *Coset[T]) bool {
	return c.elements.Equal(other.elements)
}
