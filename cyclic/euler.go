package cyclic

import "github.com/katalvlaran/finitealgebra/algebra"

// Euler's totient φ(n): the count of integers in [1, n] coprime to n.
//
// Properties:
//
//	φ(1) = 1
//	φ(p) = p - 1                 for prime p
//	φ(p^k) = p^k - p^(k-1)       for prime p, k ≥ 1
//	φ(mn) = φ(m)·φ(n)            when gcd(m, n) = 1
//	Σ_{d|n} φ(d) = n
//
// Group-theoretic meaning: a cyclic group of order n has exactly φ(n)
// generators, and φ(d) elements of order d for every divisor d of n.

// Totient computes φ(n) via the product formula φ(n) = n·∏(1 - 1/p) over
// the distinct prime divisors p of n, found by trial division.
// Complexity: O(√n)
func Totient(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	if n == 1 {
		return 1
	}

	result := n
	rest := n
	for p := uint64(2); p*p <= rest; p++ {
		if rest%p != 0 {
			continue
		}
		for rest%p == 0 {
			rest /= p
		}
		result = result / p * (p - 1)
	}
	if rest > 1 {
		result = result / rest * (rest - 1)
	}

	return result
}

// TotientPrimePower computes φ(p^k) = p^k - p^(k-1) directly.
func TotientPrimePower(p, k uint64) uint64 {
	if k == 0 {
		return 1
	}
	if k == 1 {
		return p - 1
	}

	pk := uint64(1)
	for i := uint64(0); i < k; i++ {
		pk *= p
	}

	return pk - pk/p
}

// Coprimes returns the integers in [1, n) coprime to n, ascending.
// Complexity: O(n·log n)
func Coprimes(n uint64) []uint64 {
	var out []uint64
	for i := uint64(1); i < n; i++ {
		if gcd(i, n) == 1 {
			out = append(out, i)
		}
	}

	return out
}

// CoprimeCount counts integers in [1, n) coprime to n by direct
// enumeration; it is the naive cross-check for Totient.
// Complexity: O(n·log n)
func CoprimeCount(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	if n == 1 {
		return 1
	}

	count := uint64(0)
	for i := uint64(1); i < n; i++ {
		if gcd(i, n) == 1 {
			count++
		}
	}

	return count
}

// SumOverDivisors checks the identity Σ_{d|n} φ(d) = n.
func SumOverDivisors(n uint64) bool {
	sum := uint64(0)
	for d := uint64(1); d <= n; d++ {
		if n%d == 0 {
			sum += Totient(d)
		}
	}

	return sum == n
}

// IsMultiplicativeAt checks φ(mn) = φ(m)·φ(n) for a coprime pair;
// returns false when gcd(m, n) ≠ 1 (the property does not apply).
func IsMultiplicativeAt(m, n uint64) bool {
	if gcd(m, n) != 1 {
		return false
	}

	return Totient(m*n) == Totient(m)*Totient(n)
}

// GeneratorCount returns the number of generators of g: φ(|G|) when g is
// cyclic, 0 otherwise.
func GeneratorCount[T comparable](g *algebra.Group[T]) int {
	if !IsCyclic(g) {
		return 0
	}

	return int(Totient(uint64(g.Order())))
}

// gcd returns the greatest common divisor by the Euclidean algorithm.
func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
