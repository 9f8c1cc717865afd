package search

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/factorgo/constraint"
	"github.com/hupe1980/factorgo/digit"
	"github.com/hupe1980/factorgo/orbit"
)

func newTestExpander(t *testing.T, radix, slack, maxHops int, gens []orbit.Generator) *expander {
	t.Helper()

	set, err := digit.NewSet(radix)
	require.NoError(t, err)

	orbits, err := orbit.Build(radix, gens, func(o *orbit.Options) {
		o.MaxHops = maxHops
	})
	require.NoError(t, err)

	table, err := constraint.Build(set, orbits, func(o *constraint.Options) {
		o.Slack = slack
	})
	require.NoError(t, err)

	return newExpander(set, table)
}

func expander96(t *testing.T) *expander {
	return newTestExpander(t, 96, 4, 0, orbit.MulGenerators(96, 5, 7, 11, 13))
}

func TestExpandLevelZero(t *testing.T) {
	e := expander96(t)

	// 323 = [35, 3] in base 96; level 0 needs p*q == 35 (mod 96).
	children, stats := e.expand(newRoot(), 0, 35)

	// 35 is a unit mod 96, so there is exactly one q per unit p.
	assert.Equal(t, 32, stats.generated)
	assert.Equal(t, 0, stats.pruned)
	require.Len(t, children, 32)

	var found *Candidate
	for _, c := range children {
		p, q := c.Pair(0)
		assert.Equal(t, 35, (p*q)%96)
		assert.Equal(t, 1, c.Level)
		if p == 17 && q == 19 {
			found = c
		}
	}

	require.NotNil(t, found, "expected the (17,19) branch")
	// 17*19 = 323 = 3*96 + 35.
	assert.Equal(t, int64(3), found.Carry.Int64())
}

func TestExpandCarriesForward(t *testing.T) {
	e := expander96(t)

	parent := &Candidate{
		P:     []int{17},
		Q:     []int{19},
		Carry: big.NewInt(3),
		Level: 1,
	}

	children, _ := e.expand(parent, 1, 3)
	require.NotEmpty(t, children)

	var padded *Candidate
	for _, c := range children {
		p, q := c.Pair(1)
		// carry + 17*q + p*19 == 3 (mod 96) for every emitted branch.
		assert.Equal(t, 3, (3+17*q+p*19)%96)
		if p == 0 && q == 0 {
			padded = c
		}
	}

	require.NotNil(t, padded, "expected the zero-padding branch")
	assert.Equal(t, int64(0), padded.Carry.Int64())
	assert.Equal(t, []int{17, 0}, padded.P)
	assert.Equal(t, []int{19, 0}, padded.Q)
}

func TestExpandImmutableParent(t *testing.T) {
	e := expander96(t)

	parent := &Candidate{
		P:     []int{17},
		Q:     []int{19},
		Carry: big.NewInt(3),
		Level: 1,
	}

	e.expand(parent, 1, 3)

	assert.Equal(t, []int{17}, parent.P)
	assert.Equal(t, []int{19}, parent.Q)
	assert.Equal(t, int64(3), parent.Carry.Int64())
	assert.Equal(t, 1, parent.Level)
}

func TestExpandFilterPrunes(t *testing.T) {
	// Radix 10, orbit cut at 2 hops: 7 keeps the sentinel distance, so the
	// (3,9) and (9,3) branches for target digit 7 violate the inequality
	// while (1,7) and (7,1) pass through the sentinel on the right side.
	e := newTestExpander(t, 10, 0, 2, orbit.MulGenerators(10, 3))

	children, stats := e.expand(newRoot(), 0, 7)

	assert.Equal(t, 4, stats.generated)
	assert.Equal(t, 2, stats.pruned)
	require.Len(t, children, 2)

	for _, c := range children {
		p, _ := c.Pair(0)
		assert.Contains(t, []int{1, 7}, p)
	}
}

func TestExpandZeroPaddingUnfiltered(t *testing.T) {
	// Target digit 0 forces a zero on one side; those branches must never
	// be heuristically filtered.
	e := newTestExpander(t, 10, 0, 2, orbit.MulGenerators(10, 3))

	children, stats := e.expand(newRoot(), 0, 0)

	assert.Equal(t, stats.generated, len(children))
	assert.Equal(t, 0, stats.pruned)
	// (0,0) plus (0,q) and (p,0) for the four nonzero admissible digits.
	assert.Len(t, children, 9)
}
