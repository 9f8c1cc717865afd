package search

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	frontier := []*Candidate{
		{P: []int{1, 1}, Q: []int{1, 0}, Level: 2},  // 97 * 1, trivial
		{P: []int{35, 0}, Q: []int{1, 0}, Level: 2}, // 35 * 1, trivial
		{P: []int{17, 0}, Q: []int{19, 0}, Level: 2},
	}

	p, q, checked := verify(frontier, big.NewInt(323), 96)
	require.NotNil(t, p)
	assert.Equal(t, int64(17), p.Int64())
	assert.Equal(t, int64(19), q.Int64())
	assert.Equal(t, 3, checked)
}

func TestVerifyRejectsTrivial(t *testing.T) {
	// 323 * 1 reconstructs the target exactly but is not a factorization.
	frontier := []*Candidate{
		{P: []int{35, 3}, Q: []int{1, 0}, Level: 2},
	}

	p, q, checked := verify(frontier, big.NewInt(323), 96)
	assert.Nil(t, p)
	assert.Nil(t, q)
	assert.Equal(t, 1, checked)
}

func TestVerifyMiss(t *testing.T) {
	frontier := []*Candidate{
		{P: []int{5, 0}, Q: []int{7, 0}, Level: 2},
		{P: []int{11, 0}, Q: []int{13, 0}, Level: 2},
	}

	p, q, checked := verify(frontier, big.NewInt(323), 96)
	assert.Nil(t, p)
	assert.Nil(t, q)
	assert.Equal(t, 2, checked)
}

func TestVerifyEmptyFrontier(t *testing.T) {
	p, q, checked := verify(nil, big.NewInt(323), 96)
	assert.Nil(t, p)
	assert.Nil(t, q)
	assert.Zero(t, checked)
}
