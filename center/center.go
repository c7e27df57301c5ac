// Package center computes commuting-element structure of a finite group:
// the center Z(G) = {z ∈ G | z∘g = g∘z for all g} and per-element
// centralizers C_G(a) = {g ∈ G | g∘a = a∘g}.
//
// Both are always subgroups (the center is even normal), the center is
// abelian, and G is abelian exactly when Z(G) = G. Every query here is an
// exhaustive O(|G|) or O(|G|²) scan over the carrier.
package center

import (
	"errors"

	"github.com/katalvlaran/finitealgebra/algebra"
	"github.com/katalvlaran/finitealgebra/set"
	"github.com/katalvlaran/finitealgebra/subgroup"
)

// ErrNotInCarrier indicates the queried element is outside the group.
var ErrNotInCarrier = errors.New("center: element not in group")

// OfGroup computes Z(G): every element commuting with the whole carrier.
// Complexity: O(|G|²)
func OfGroup[T comparable](g *algebra.Group[T]) *set.Set[T] {
	z := set.New[T]()
	for _, candidate := range g.Set().Elements() {
		if IsInCenter(g, candidate) {
			z.Add(candidate)
		}
	}

	return z
}

// IsInCenter reports whether e commutes with every element of g.
// Complexity: O(|G|)
func IsInCenter[T comparable](g *algebra.Group[T], e T) bool {
	if !g.Contains(e) {
		return false
	}
	for _, x := range g.Set().Elements() {
		if !Commutes(g, e, x) {
			return false
		}
	}

	return true
}

// AsSubgroup wraps Z(G) as a validated Subgroup. The center always
// satisfies the criterion, so validation succeeds.
func AsSubgroup[T comparable](g *algebra.Group[T]) (*subgroup.Subgroup[T], error) {
	return subgroup.New(g, OfGroup(g))
}

// IsAbelianByCenter reports whether Z(G) = G, i.e. the group is abelian.
func IsAbelianByCenter[T comparable](g *algebra.Group[T]) bool {
	return OfGroup(g).Equal(g.Set())
}

// IsCenterless reports whether Z(G) = {e}.
func IsCenterless[T comparable](g *algebra.Group[T]) bool {
	z := OfGroup(g)

	return z.Len() == 1 && z.Contains(g.Identity())
}

// Centralizer computes C_G(a): every element commuting with a.
// Complexity: O(|G|)
func Centralizer[T comparable](g *algebra.Group[T], a T) (*set.Set[T], error) {
	if !g.Contains(a) {
		return nil, ErrNotInCarrier
	}

	c := set.New[T]()
	for _, x := range g.Set().Elements() {
		if Commutes(g, x, a) {
			c.Add(x)
		}
	}

	return c, nil
}

// CentralizerSubgroup wraps C_G(a) as a validated Subgroup. A
// centralizer always satisfies the criterion.
func CentralizerSubgroup[T comparable](g *algebra.Group[T], a T) (*subgroup.Subgroup[T], error) {
	c, err := Centralizer(g, a)
	if err != nil {
		return nil, err
	}

	return subgroup.New(g, c)
}

// Commutes reports whether a∘b = b∘a. False for foreign operands.
func Commutes[T comparable](g *algebra.Group[T], a, b T) bool {
	ab, err := g.Operate(a, b)
	if err != nil {
		return false
	}
	ba, err := g.Operate(b, a)

	return err == nil && ab == ba
}
