package order

import "github.com/katalvlaran/finitealgebra/algebra"

// Exponent computes exp(G): the smallest n ≥ 1 with aⁿ = e for every
// a ∈ G, obtained as the LCM of all element orders.
//
// Properties: exp(G) divides |G|; exp(G) = |G| iff G is cyclic;
// exp(G) = 1 iff G is trivial.
//
// Returns ErrInfiniteOrder if any element's order could not be
// established (upstream invariant violation).
// Complexity: O(|G|²) operation applications.
func Exponent[T comparable](g *algebra.Group[T]) (int, error) {
	result := 1
	for _, a := range g.Set().Elements() {
		ord, err := OfElement(g, a)
		if err != nil {
			return 0, err
		}
		result = lcm(result, ord)
	}

	return result, nil
}

// SatisfiesExponent reports whether aⁿ = e holds for every element.
// Complexity: O(|G|·log n)
func SatisfiesExponent[T comparable](g *algebra.Group[T], n int) bool {
	for _, a := range g.Set().Elements() {
		p, err := g.Power(a, int64(n))
		if err != nil || p != g.Identity() {
			return false
		}
	}

	return true
}

// HasExponent reports whether exp(G) equals n.
func HasExponent[T comparable](g *algebra.Group[T], n int) bool {
	exp, err := Exponent(g)

	return err == nil && exp == n
}

// DividesGroupOrder checks the property exp(G) | |G|.
func DividesGroupOrder[T comparable](g *algebra.Group[T]) bool {
	exp, err := Exponent(g)
	if err != nil {
		return false
	}

	return g.Order()%exp == 0
}

// IsCyclicByExponent reports whether exp(G) = |G|, which holds exactly
// when G is cyclic.
func IsCyclicByExponent[T comparable](g *algebra.Group[T]) bool {
	exp, err := Exponent(g)

	return err == nil && exp == g.Order()
}

// gcd returns the greatest common divisor by the Euclidean algorithm.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// lcm returns the least common multiple; lcm(x, 0) = 0 by convention,
// never reached here since element orders are ≥ 1.
func lcm(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}

	return a / gcd(a, b) * b
}
