package cayley_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/finitealgebra/algebra"
	"github.com/katalvlaran/finitealgebra/cayley"
	"github.com/katalvlaran/finitealgebra/set"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustZn builds ℤₙ under addition modulo n.
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
	require.NoError(t, err, "ℤ%d must construct", n)

	return g
}

// mustMinGroupoid builds the non-cancellative groupoid ({1,…,4}, min).
func mustMinGroupoid(t *testing.T) *algebra.Groupoid[int] {
	t.Helper()

	gp, err := algebra.NewGroupoid(set.New(1, 2, 3, 4), func(a, b int) int {
		if a < b {
			return a
		}

		return b
	})
	require.NoError(t, err)

	return gp
}

func TestTable_LookupMatchesOperation(t *testing.T) {
	g := mustZn(t, 6)

	tbl, err := cayley.New[int](g)
	require.NoError(t, err)
	require.Equal(t, 6, tbl.Size())

	for a := 0; a < 6; a++ {
		for b := 0; b < 6; b++ {
			got, err := tbl.Lookup(a, b)
			require.NoError(t, err)
			assert.Equal(t, (a+b)%6, got, "%d∘%d", a, b)
		}
	}
}

func TestTable_ElementsSnapshot(t *testing.T) {
	g := mustZn(t, 4)

	tbl, err := cayley.New[int](g)
	require.NoError(t, err)

	elems := tbl.Elements()
	assert.ElementsMatch(t, []int{0, 1, 2, 3}, elems)

	// Mutating the returned slice must not disturb the table.
	elems[0] = 99
	res, err := tbl.Lookup(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, res)
}

func TestTable_LookupForeignElement(t *testing.T) {
	g := mustZn(t, 3)

	tbl, err := cayley.New[int](g)
	require.NoError(t, err)

	_, err = tbl.Lookup(7, 0)
	assert.True(t, errors.Is(err, cayley.ErrNotInTable))
	_, err = tbl.Lookup(0, 7)
	assert.True(t, errors.Is(err, cayley.ErrNotInTable))
}

func TestTable_GroupProperties(t *testing.T) {
	g := mustZn(t, 6)

	tbl, err := cayley.New[int](g)
	require.NoError(t, err)

	assert.True(t, tbl.IsAssociative())
	assert.True(t, tbl.IsCommutative())
	assert.True(t, tbl.HasLeftCancellation())
	assert.True(t, tbl.HasRightCancellation())
	assert.True(t, tbl.HasCancellation())

	e, err := tbl.FindIdentity()
	require.NoError(t, err)
	assert.Equal(t, 0, e)
}

func TestTable_GroupoidWithoutIdentity(t *testing.T) {
	gp := mustMinGroupoid(t)

	tbl, err := cayley.New[int](gp)
	require.NoError(t, err)

	// min is associative and commutative but absorbs: rows repeat values.
	assert.True(t, tbl.IsAssociative())
	assert.True(t, tbl.IsCommutative())
	assert.False(t, tbl.HasLeftCancellation())
	assert.False(t, tbl.HasRightCancellation())
	assert.False(t, tbl.HasCancellation())

	// 4 is a two-sided identity for min over {1,…,4}.
	e, err := tbl.FindIdentity()
	require.NoError(t, err)
	assert.Equal(t, 4, e)
}

func TestTable_NoIdentity(t *testing.T) {
	// Constant-left projection: a∘b = a. Closed, associative, no identity.
	gp, err := algebra.NewGroupoid(set.New(1, 2, 3), func(a, _ int) int { return a })
	require.NoError(t, err)

	tbl, err := cayley.New[int](gp)
	require.NoError(t, err)

	_, err = tbl.FindIdentity()
	assert.True(t, errors.Is(err, cayley.ErrNoIdentity))
	assert.True(t, tbl.IsAssociative())
	assert.False(t, tbl.IsCommutative())
}

// escaping is an unvalidated Structure whose products leave the carrier
// (plain addition over {0,1,2}).
type escaping struct{ elems *set.Set[int] }

func (s escaping) Set() *set.Set[int]            { return s.elems.Clone() }
func (s escaping) Operate(a, b int) (int, error) { return a + b, nil }

// TestTable_EscapingOperationIsNotAssociative: a table built from an
// unvalidated structure whose products escape the element set must not
// be certified associative; the chained lookup detects the escape.
func TestTable_EscapingOperationIsNotAssociative(t *testing.T) {
	tbl, err := cayley.New[int](escaping{elems: set.New(0, 1, 2)})
	require.NoError(t, err)

	assert.False(t, tbl.IsAssociative(), "1∘2 = 3 is outside the table")
}

func TestTable_NonAssociativeOperation(t *testing.T) {
	// Subtraction modulo 4 is closed but not associative.
	gp, err := algebra.NewGroupoid(set.New(0, 1, 2, 3), func(a, b int) int {
		return ((a-b)%4 + 4) % 4
	})
	require.NoError(t, err)

	tbl, err := cayley.New[int](gp)
	require.NoError(t, err)

	assert.False(t, tbl.IsAssociative())
	assert.False(t, tbl.IsCommutative())
}

func TestTable_Format(t *testing.T) {
	g := mustZn(t, 3)

	tbl, err := cayley.New[int](g)
	require.NoError(t, err)

	out := tbl.Format(func(v int) string {
		return []string{"zero", "one", "two"}[v]
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4, "header plus one row per element")
	assert.Contains(t, lines[0], "∘")
	assert.Contains(t, lines[0], "zero")

	// Longest label is 4 runes, so every cell is padded to width 6.
	for _, line := range lines {
		assert.Equal(t, 4*6, len([]rune(line)), "line %q", line)
	}
}
