package cyclic

import (
	"errors"

	"github.com/katalvlaran/finitealgebra/algebra"
	"github.com/katalvlaran/finitealgebra/order"
	"github.com/katalvlaran/finitealgebra/set"
	"github.com/katalvlaran/finitealgebra/subgroup"
)

var (
	// ErrNoGenerator indicates the group has no generating element, i.e.
	// it is not cyclic. Structural absence, not an input error.
	ErrNoGenerator = errors.New("cyclic: group has no generator")

	// ErrNotInCarrier indicates the candidate element is outside the group.
	ErrNotInCarrier = errors.New("cyclic: element not in group")
)

// IsGenerator reports whether e generates g, i.e. ord(e) = |G|.
// Complexity: O(|G|)
func IsGenerator[T comparable](g *algebra.Group[T], e T) bool {
	if !g.Contains(e) {
		return false
	}

	ord, err := order.OfElement(g, e)

	return err == nil && ord == g.Order()
}

// FindGenerator scans the carrier for any generating element, returning
// ErrNoGenerator when the group is not cyclic.
// Complexity: O(|G|²)
func FindGenerator[T comparable](g *algebra.Group[T]) (T, error) {
	for _, candidate := range g.Set().Elements() {
		if IsGenerator(g, candidate) {
			return candidate, nil
		}
	}

	var zero T

	return zero, ErrNoGenerator
}

// IsCyclic reports whether g has a generator.
func IsCyclic[T comparable](g *algebra.Group[T]) bool {
	_, err := FindGenerator(g)

	return err == nil
}

// FindAllGenerators collects every generating element. For a cyclic
// group of order n the result has exactly φ(n) elements; for a
// non-cyclic group it is empty.
// Complexity: O(|G|²)
func FindAllGenerators[T comparable](g *algebra.Group[T]) *set.Set[T] {
	generators := set.New[T]()
	for _, e := range g.Set().Elements() {
		if IsGenerator(g, e) {
			generators.Add(e)
		}
	}

	return generators
}

// GenerateCyclicSubgroup returns ⟨gen⟩ = {genⁿ | n = 0, 1, …, ord(gen)-1},
// built by replaying powers of gen up to its order.
//
// If the order lookup fails (unreachable for a validated finite group)
// the replay falls back to a |G|-capped loop that stops at the first
// detected repeat of the identity. The cap exists as a termination
// guarantee only and must not be relied upon for correctness.
// Complexity: O(ord(gen)) operation applications.
func GenerateCyclicSubgroup[T comparable](g *algebra.Group[T], gen T) (*set.Set[T], error) {
	if !g.Contains(gen) {
		return nil, ErrNotInCarrier
	}

	span := set.New(g.Identity())

	ord, err := order.OfElement(g, gen)
	if err != nil {
		if !errors.Is(err, order.ErrInfiniteOrder) {
			return nil, err
		}

		// Fallback: bounded replay with repeat detection.
		current := gen
		for i := 0; i < g.Order(); i++ {
			if current == g.Identity() && i > 0 {
				break
			}
			span.Add(current)
			next, opErr := g.Operate(current, gen)
			if opErr != nil {
				return nil, opErr
			}
			current = next
		}

		return span, nil
	}

	current := gen
	for i := 1; i < ord; i++ {
		span.Add(current)
		next, opErr := g.Operate(current, gen)
		if opErr != nil {
			return nil, opErr
		}
		current = next
	}

	return span, nil
}

// AsSubgroup wraps ⟨gen⟩ as a validated Subgroup of g. A cyclic span is
// always a subgroup, so validation succeeds for any carrier element.
func AsSubgroup[T comparable](g *algebra.Group[T], gen T) (*subgroup.Subgroup[T], error) {
	span, err := GenerateCyclicSubgroup(g, gen)
	if err != nil {
		return nil, err
	}

	return subgroup.New(g, span)
}
