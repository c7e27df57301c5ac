package subgroup_test

import (
	"testing"

	"github.com/katalvlaran/finitealgebra/set"
	"github.com/katalvlaran/finitealgebra/subgroup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNormal_AbelianSubgroupsAreNormal verifies that {0,3} ⊂ ℤ₆ promotes:
// every subgroup of an abelian group is normal.
func TestNormal_AbelianSubgroupsAreNormal(t *testing.T) {
	g := mustZn(t, 6)

	h, err := subgroup.New(g, set.New(0, 3))
	require.NoError(t, err)

	n, err := subgroup.NewNormal(h)
	require.NoError(t, err)

	assert.True(t, n.VerifyNormal(), "re-validation must hold")
	assert.True(t, n.VerifyNormalViaCosets(), "coset cross-check must agree")
}

// TestNormal_RejectsNonNormalSubgroup uses the order-2 subgroup
// {e, (0 1)} of S₃, the canonical non-normal example.
func TestNormal_RejectsNonNormalSubgroup(t *testing.T) {
	g := mustS3(t)

	h, err := subgroup.New(g, set.New(s3Identity, perm{1, 0, 2}))
	require.NoError(t, err, "{e, (0 1)} is a subgroup")

	assert.False(t, subgroup.IsNormal(h))

	_, err = subgroup.NewNormal(h)
	assert.ErrorIs(t, err, subgroup.ErrNotNormal)
}

// TestNormal_AlternatingGroupIsNormal verifies A₃ ⊲ S₃ and that the
// conjugation and coset checks agree on it.
func TestNormal_AlternatingGroupIsNormal(t *testing.T) {
	g := mustS3(t)

	a3 := set.New(s3Identity, perm{1, 2, 0}, perm{2, 0, 1})
	n, err := subgroup.NewNormalFromSet(g, a3)
	require.NoError(t, err, "A₃ is normal in S₃ (index 2)")

	assert.True(t, n.VerifyNormal())
	assert.True(t, n.VerifyNormalViaCosets())
}

// TestNormal_FromSetSurfacesSubgroupErrorsFirst verifies the layering:
// a non-subgroup never reaches the normality check.
func TestNormal_FromSetSurfacesSubgroupErrorsFirst(t *testing.T) {
	g := mustZn(t, 6)

	_, err := subgroup.NewNormalFromSet(g, set.New(0, 1))
	assert.ErrorIs(t, err, subgroup.ErrNotSubgroup)
}

// TestNormal_TrivialAndImproper verifies the always-normal extremes.
func TestNormal_TrivialAndImproper(t *testing.T) {
	g := mustS3(t)

	triv := subgroup.TrivialNormal(g)
	require.NotNil(t, triv)
	assert.Equal(t, 1, triv.Order())

	full := subgroup.ImproperNormal(g)
	require.NotNil(t, full)
	assert.Equal(t, 6, full.Order())
}
