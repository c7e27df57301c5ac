package algebra_test

import (
	"testing"

	"github.com/katalvlaran/finitealgebra/algebra"
	"github.com/katalvlaran/finitealgebra/set"
	"github.com/stretchr/testify/require"
)

// modAdd returns addition modulo n.
func modAdd(n int) algebra.BinaryOp[int] {
	return func(a, b int) int { return (a + b) % n }
}

// modNeg returns the additive inverse modulo n.
func modNeg(n int) algebra.InverseFn[int] {
	return func(a int) int { return (n - a) % n }
}

// zn builds the carrier {0, …, n-1}.
func zn(n int) *set.Set[int] {
	s := set.New[int]()
	for i := 0; i < n; i++ {
		s.Add(i)
	}

	return s
}

// mustZn constructs ℤₙ under addition modulo n, failing the test on error.
func mustZn(t *testing.T, n int) *algebra.Group[int] {
	t.Helper()

	g, err := algebra.NewGroup(zn(n), modAdd(n), 0, modNeg(n))
	require.NoError(t, err, "ℤ%d must construct", n)

	return g
}
