package order

import (
	"errors"

	"github.com/katalvlaran/finitealgebra/algebra"
	"github.com/katalvlaran/finitealgebra/set"
)

var (
	// ErrNotInCarrier indicates the queried element is outside the group.
	ErrNotInCarrier = errors.New("order: element not in group")

	// ErrInfiniteOrder indicates the identity did not recur within |G|
	// iterations. Unreachable for a validated finite group; reported
	// instead of silently returning a wrong order.
	ErrInfiniteOrder = errors.New("order: no finite order found within group bound")
)

// OfElement computes ord(a): the smallest n ≥ 1 with aⁿ = e.
//
// Properties of the result (see the property checks below):
//
//	ord(e) = 1
//	ord(a) = ord(a⁻¹)
//	aⁿ = e  ⇒  ord(a) | n
//
// Complexity: O(|G|) operation applications.
func OfElement[T comparable](g *algebra.Group[T], a T) (int, error) {
	if !g.Contains(a) {
		return 0, ErrNotInCarrier
	}
	if a == g.Identity() {
		return 1, nil
	}

	current := a
	for n := 1; n <= g.Order(); n++ {
		if current == g.Identity() {
			return n, nil
		}
		next, err := g.Operate(current, a)
		if err != nil {
			return 0, err
		}
		current = next
	}

	return 0, ErrInfiniteOrder
}

// HasOrder reports whether ord(a) equals n.
func HasOrder[T comparable](g *algebra.Group[T], a T, n int) bool {
	ord, err := OfElement(g, a)

	return err == nil && ord == n
}

// ElementsOfOrder collects every element whose order is exactly n.
// Complexity: O(|G|²)
func ElementsOfOrder[T comparable](g *algebra.Group[T], n int) *set.Set[T] {
	out := set.New[T]()
	for _, a := range g.Set().Elements() {
		if HasOrder(g, a, n) {
			out.Add(a)
		}
	}

	return out
}

// SatisfiesIdentityPower reports whether aⁿ = e.
func SatisfiesIdentityPower[T comparable](g *algebra.Group[T], a T, n int) bool {
	p, err := g.Power(a, int64(n))

	return err == nil && p == g.Identity()
}

// OrderDividesPower checks the property: if aⁿ = e then ord(a) divides n.
// Returns false when aⁿ ≠ e (the property does not apply).
func OrderDividesPower[T comparable](g *algebra.Group[T], a T, n int) bool {
	if !SatisfiesIdentityPower(g, a, n) {
		return false
	}

	ord, err := OfElement(g, a)
	if err != nil {
		return false
	}

	return n%ord == 0
}

// InverseHasSameOrder checks the property ord(a) = ord(a⁻¹).
func InverseHasSameOrder[T comparable](g *algebra.Group[T], a T) bool {
	ord, err := OfElement(g, a)
	if err != nil {
		return false
	}

	ia, err := g.Inverse(a)
	if err != nil {
		return false
	}
	iord, err := OfElement(g, ia)

	return err == nil && ord == iord
}
