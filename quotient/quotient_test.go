package quotient_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/finitealgebra/algebra"
	"github.com/katalvlaran/finitealgebra/quotient"
	"github.com/katalvlaran/finitealgebra/set"
	"github.com/katalvlaran/finitealgebra/subgroup"
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

// mustZ6Mod3 builds the quotient ℤ₆/{0,3}.
func mustZ6Mod3(t *testing.T) (*algebra.Group[int], *quotient.FactorGroup[int]) {
	t.Helper()

	g := mustZn(t, 6)
	n, err := subgroup.NewNormalFromSet(g, set.New(0, 3))
	require.NoError(t, err)

	f, err := quotient.New(g, n)
	require.NoError(t, err)

	return g, f
}

// sortedInts returns the members of s ascending.
func sortedInts(s *set.Set[int]) []int {
	out := s.Elements()
	sort.Ints(out)

	return out
}

// TestFactorGroup_Z6Mod3HasThreeCosets: ℤ₆/{0,3} has
// exactly the elements {0,3}, {1,4}, {2,5}.
func TestFactorGroup_Z6Mod3HasThreeCosets(t *testing.T) {
	_, f := mustZ6Mod3(t)

	require.Equal(t, 3, f.Size())

	var got [][]int
	for _, c := range f.Cosets() {
		got = append(got, sortedInts(c.Elements()))
	}
	sort.Slice(got, func(i, j int) bool { return got[i][0] < got[j][0] })
	assert.Equal(t, [][]int{{0, 3}, {1, 4}, {2, 5}}, got)
}

// TestFactorGroup_InducedOperation verifies (1N)∘(2N) = 3N = N in ℤ₆/{0,3}.
func TestFactorGroup_InducedOperation(t *testing.T) {
	_, f := mustZ6Mod3(t)

	c1, err := f.CosetOf(1)
	require.NoError(t, err)
	c2, err := f.CosetOf(2)
	require.NoError(t, err)

	prod, err := f.Operate(c1, c2)
	require.NoError(t, err)
	assert.True(t, prod.Equal(f.Identity()), "{1,4}∘{2,5} = {0,3} = N")
}

// TestFactorGroup_IdentityAndInverse verifies the quotient's identity is
// the coset N and inverses follow (aN)⁻¹ = a⁻¹N.
func TestFactorGroup_IdentityAndInverse(t *testing.T) {
	_, f := mustZ6Mod3(t)

	id := f.Identity()
	assert.Equal(t, []int{0, 3}, sortedInts(id.Elements()))

	c1, err := f.CosetOf(1)
	require.NoError(t, err)
	inv, err := f.Inverse(c1)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 5}, sortedInts(inv.Elements()), "inv({1,4}) = {2,5}")

	prod, err := f.Operate(c1, inv)
	require.NoError(t, err)
	assert.True(t, prod.Equal(id))
}

// TestFactorGroup_Verify runs the exhaustive group-law self-check.
func TestFactorGroup_Verify(t *testing.T) {
	_, f := mustZ6Mod3(t)

	assert.True(t, f.Verify())
}

// TestFactorGroup_RepresentativeIndependence is the well-definedness
// property: every representative pair of two cosets multiplies into the
// same result coset.
func TestFactorGroup_RepresentativeIndependence(t *testing.T) {
	_, f := mustZ6Mod3(t)

	assert.True(t, f.CheckRepresentativeIndependence())
}

// TestFactorGroup_S3ModA3 builds the non-abelian quotient S₃/A₃ ≅ ℤ₂.
func TestFactorGroup_S3ModA3(t *testing.T) {
	type perm = [3]int
	carrier := set.New(
		perm{0, 1, 2}, perm{0, 2, 1}, perm{1, 0, 2},
		perm{1, 2, 0}, perm{2, 0, 1}, perm{2, 1, 0},
	)
	compose := func(a, b perm) perm { return perm{a[b[0]], a[b[1]], a[b[2]]} }
	invert := func(p perm) perm {
		var q perm
		for i, v := range p {
			q[v] = i
		}

		return q
	}

	g, err := algebra.NewGroup(carrier, compose, perm{0, 1, 2}, invert)
	require.NoError(t, err)

	a3, err := subgroup.NewNormalFromSet(g, set.New(perm{0, 1, 2}, perm{1, 2, 0}, perm{2, 0, 1}))
	require.NoError(t, err)

	f, err := quotient.New(g, a3)
	require.NoError(t, err)

	assert.Equal(t, 2, f.Size(), "[S₃ : A₃] = 2")
	assert.True(t, f.Verify())
	assert.True(t, f.CheckRepresentativeIndependence())

	// The transposition coset is its own inverse, as in ℤ₂.
	odd, err := f.CosetOf(perm{1, 0, 2})
	require.NoError(t, err)
	sq, err := f.Operate(odd, odd)
	require.NoError(t, err)
	assert.True(t, sq.Equal(f.Identity()))
}

// TestFactorGroup_RejectsForeignCoset verifies that a coset from a
// different quotient structure is refused.
func TestFactorGroup_RejectsForeignCoset(t *testing.T) {
	g, f := mustZ6Mod3(t)

	// A coset of a different subgroup of the same parent.
	h2, err := subgroup.New(g, set.New(0, 2, 4))
	require.NoError(t, err)
	foreign, err := subgroup.NewCoset(g, h2, 1, subgroup.Left)
	require.NoError(t, err)

	_, err = f.Operate(foreign, f.Identity())
	assert.ErrorIs(t, err, quotient.ErrForeignCoset)

	_, err = f.Inverse(foreign)
	assert.ErrorIs(t, err, quotient.ErrForeignCoset)
}

// TestFactorGroup_CosetOfForeignElement verifies the per-call domain check.
func TestFactorGroup_CosetOfForeignElement(t *testing.T) {
	_, f := mustZ6Mod3(t)

	_, err := f.CosetOf(42)
	assert.ErrorIs(t, err, quotient.ErrNotInCarrier)
}
