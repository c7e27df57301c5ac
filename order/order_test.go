package order_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/finitealgebra/algebra"
	"github.com/katalvlaran/finitealgebra/order"
	"github.com/katalvlaran/finitealgebra/set"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustZn constructs ℤₙ under addition modulo n.
func mustZn(t *testing.T, n int) *algebra.Group[int] {
	t.Helper()

	carrier := set.New[int]()
	for i := 0; i < n; i++ {
		carrier.Add(i)
	}
	g, err := algebra.NewGroup(
		carrier,
		func(a, b int) int { return (a + b) % n },
		0,
		func(a int) int { return (n - a) % n },
	)
	require.NoError(t, err)

	return g
}

// mustKlein constructs the Klein four-group as {1,3,5,7} under
// multiplication modulo 8: abelian, non-cyclic, every element self-inverse.
func mustKlein(t *testing.T) *algebra.Group[int] {
	t.Helper()

	g, err := algebra.NewGroup(
		set.New(1, 3, 5, 7),
		func(a, b int) int { return (a * b) % 8 },
		1,
		func(a int) int { return a },
	)
	require.NoError(t, err)

	return g
}

// TestOrder_Z6Elements pins the order of every element of ℤ₆.
func TestOrder_Z6Elements(t *testing.T) {
	g := mustZn(t, 6)

	want := map[int]int{0: 1, 1: 6, 2: 3, 3: 2, 4: 3, 5: 6}
	for a, expected := range want {
		ord, err := order.OfElement(g, a)
		require.NoError(t, err)
		assert.Equal(t, expected, ord, "ord(%d) in ℤ₆", a)
	}
}

// TestOrder_IdentityIsOne verifies ord(e) = 1.
func TestOrder_IdentityIsOne(t *testing.T) {
	g := mustZn(t, 6)

	ord, err := order.OfElement(g, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, ord)
}

// TestOrder_ForeignElement verifies the domain check.
func TestOrder_ForeignElement(t *testing.T) {
	g := mustZn(t, 6)

	_, err := order.OfElement(g, 42)
	assert.ErrorIs(t, err, order.ErrNotInCarrier)
}

// TestOrder_ElementsOfOrder verifies the per-order buckets of ℤ₆:
// φ(d) elements of order d for every divisor d.
func TestOrder_ElementsOfOrder(t *testing.T) {
	g := mustZn(t, 6)

	buckets := map[int][]int{
		1: {0},
		2: {3},
		3: {2, 4},
		6: {1, 5},
	}
	for d, want := range buckets {
		got := order.ElementsOfOrder(g, d).Elements()
		sort.Ints(got)
		assert.Equal(t, want, got, "elements of order %d", d)
	}

	assert.True(t, order.ElementsOfOrder(g, 4).IsEmpty(), "4 does not divide 6")
}

// TestOrder_Properties exercises the classical order identities on ℤ₁₂.
func TestOrder_Properties(t *testing.T) {
	g := mustZn(t, 12)

	assert.True(t, order.HasOrder(g, 2, 6))
	assert.True(t, order.SatisfiesIdentityPower(g, 2, 12), "2·12 ≡ 0")
	assert.True(t, order.OrderDividesPower(g, 2, 12), "ord(2)=6 divides 12")
	assert.False(t, order.OrderDividesPower(g, 2, 5), "2·5 ≢ 0, property does not apply")

	for _, a := range g.Set().Elements() {
		assert.True(t, order.InverseHasSameOrder(g, a), "ord(a) = ord(a⁻¹) for a=%d", a)
	}
}

// TestExponent_Z6 verifies exp(ℤ₆) = 6.
func TestExponent_Z6(t *testing.T) {
	g := mustZn(t, 6)

	exp, err := order.Exponent(g)
	require.NoError(t, err)
	assert.Equal(t, 6, exp)

	assert.True(t, order.HasExponent(g, 6))
	assert.True(t, order.SatisfiesExponent(g, 6))
	assert.False(t, order.SatisfiesExponent(g, 4), "1·4 ≢ 0 mod 6")
	assert.True(t, order.SatisfiesExponent(g, 12), "any multiple of the exponent works")
	assert.True(t, order.DividesGroupOrder(g))
	assert.True(t, order.IsCyclicByExponent(g))
}

// TestExponent_KleinFourGroup verifies exp = 2 < |G| = 4 on a non-cyclic
// group: the LCM path differs from the group order.
func TestExponent_KleinFourGroup(t *testing.T) {
	g := mustKlein(t)

	exp, err := order.Exponent(g)
	require.NoError(t, err)
	assert.Equal(t, 2, exp, "every non-identity element has order 2")

	assert.True(t, order.DividesGroupOrder(g), "2 divides 4")
	assert.False(t, order.IsCyclicByExponent(g), "exp(G) < |G| means not cyclic")
}
