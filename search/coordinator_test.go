package search

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunLevelMergeOrder(t *testing.T) {
	e := expander96(t)

	frontier, _ := e.expand(newRoot(), 0, 35)
	require.Len(t, frontier, 32)

	configs := []struct {
		workers, batchSize int
	}{
		{1, 32},
		{1, 3},
		{4, 5},
		{8, 1},
	}

	var reference []*Candidate
	for _, cfg := range configs {
		co := newCoordinator(cfg.workers, cfg.batchSize, e)

		merged, stats, err := co.runLevel(context.Background(), frontier, 1, 3)
		require.NoError(t, err)
		assert.Equal(t, len(merged), stats.generated-stats.pruned)

		for i, c := range merged {
			assert.Equal(t, uint64(i), c.seq)
		}

		if reference == nil {
			reference = merged
			continue
		}

		require.Len(t, merged, len(reference))
		for i := range merged {
			assert.Equal(t, reference[i].P, merged[i].P)
			assert.Equal(t, reference[i].Q, merged[i].Q)
			assert.Zero(t, reference[i].Carry.Cmp(merged[i].Carry))
		}
	}
}

func TestRunLevelWorkerPanic(t *testing.T) {
	e := expander96(t)

	// A level-1 candidate with no level-0 digits makes the expander index
	// out of range inside the batch task.
	broken := &Candidate{Carry: new(big.Int), Level: 1}

	co := newCoordinator(2, 1, e)
	_, _, err := co.runLevel(context.Background(), []*Candidate{broken}, 1, 3)

	var we *WorkerError
	require.ErrorAs(t, err, &we)
	assert.Equal(t, 1, we.Level)
	assert.Equal(t, 0, we.Batch)
	assert.Contains(t, we.Error(), "panic")
}

func TestRunLevelFailFast(t *testing.T) {
	e := expander96(t)

	frontier, _ := e.expand(newRoot(), 0, 35)
	broken := &Candidate{Carry: new(big.Int), Level: 1}
	frontier = append(frontier, broken)

	co := newCoordinator(4, 2, e)
	merged, _, err := co.runLevel(context.Background(), frontier, 1, 3)

	require.Error(t, err)
	assert.Nil(t, merged, "partial results must be discarded")
}

func TestRunLevelCancelled(t *testing.T) {
	e := expander96(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	frontier, _ := e.expand(newRoot(), 0, 35)

	co := newCoordinator(2, 4, e)
	_, _, err := co.runLevel(ctx, frontier, 1, 3)
	assert.ErrorIs(t, err, context.Canceled)
}
