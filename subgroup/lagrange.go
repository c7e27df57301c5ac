package subgroup

// Lagrange's theorem: for a finite group G and subgroup H,
//
//	|G| = |H| × [G : H]
//
// where the index [G : H] is the number of distinct left cosets. In
// particular |H| divides |G|.
//
// This file builds the coset partition by repeatedly picking an
// unprocessed representative, deriving its coset and skipping every
// element it covers, so each parent element lands in exactly one coset.

import (
	"sort"

	"github.com/katalvlaran/finitealgebra/algebra"
	"github.com/katalvlaran/finitealgebra/set"
)

// FindAllCosets partitions the parent carrier of sub into its distinct
// left cosets.
// Complexity: O(|G|·|H|) operation applications.
func FindAllCosets[T comparable](sub *Subgroup[T]) ([]*Coset[T], error) {
	return partition(sub, Left)
}

// RightCosetPartition partitions the parent carrier into distinct right
// cosets. For a normal subgroup it equals the left partition.
func RightCosetPartition[T comparable](sub *Subgroup[T]) ([]*Coset[T], error) {
	return partition(sub, Right)
}

func partition[T comparable](sub *Subgroup[T], side Side) ([]*Coset[T], error) {
	var cosets []*Coset[T]
	covered := make(map[T]struct{}, sub.parent.Order())

	for _, g := range sub.parent.Set().Elements() {
		if _, done := covered[g]; done {
			continue
		}

		c, err := NewCoset(sub.parent, sub, g, side)
		if err != nil {
			return nil, err
		}
		cosets = append(cosets, c)
		for _, e := range c.elements.Elements() {
			covered[e] = struct{}{}
		}
	}

	return cosets, nil
}

// Index computes [G : H], the number of distinct left cosets of sub.
func Index[T comparable](sub *Subgroup[T]) (int, error) {
	cosets, err := FindAllCosets(sub)
	if err != nil {
		return 0, err
	}

	return len(cosets), nil
}

// VerifyLagrange checks |G| = |H| × [G : H] exactly.
func VerifyLagrange[T comparable](sub *Subgroup[T]) (bool, error) {
	index, err := Index(sub)
	if err != nil {
		return false, err
	}

	return sub.parent.Order() == sub.Order()*index, nil
}

// OrderDivides reports the necessary condition |G| mod |H| == 0.
func OrderDivides[T comparable](sub *Subgroup[T]) bool {
	return sub.parent.Order()%sub.Order() == 0
}

// PossibleSubgroupOrders returns the divisors of |G| in ascending order —
// the only admissible subgroup sizes by Lagrange's theorem. The condition
// is necessary, not sufficient: not every divisor is realized in general.
func PossibleSubgroupOrders[T comparable](g *algebra.Group[T]) []int {
	order := g.Order()
	var divisors []int
	for d := 1; d <= order; d++ {
		if order%d == 0 {
			divisors = append(divisors, d)
		}
	}
	sort.Ints(divisors)

	return divisors
}

// VerifyPartition checks that cosets form a partition of g's carrier:
// their union covers the carrier and they are pairwise disjoint.
func VerifyPartition[T comparable](g *algebra.Group[T], cosets []*Coset[T]) bool {
	carrier := g.Set()

	union := set.New[T]()
	for _, c := range cosets {
		union = union.Union(c.Elements())
	}
	if !union.Equal(carrier) {
		return false
	}

	for i := 0; i < len(cosets); i++ {
		for j := i + 1; j < len(cosets); j++ {
			if !cosets[i].Elements().Intersection(cosets[j].Elements()).IsEmpty() {
				return false
			}
		}
	}

	return true
}
