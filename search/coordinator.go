package search

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// coordinator fans one level's frontier out across a bounded set of workers
// and joins every batch before anything downstream runs.
//
// Batches share only the immutable tables; each task owns its input slice
// and its result slot, so no locking happens during expand/filter. Beam
// selection is never performed per batch - the barrier guarantees the
// merge/score/select pass sees the complete unioned frontier, which is what
// makes the selected beam invariant under worker count and batch size.
type coordinator struct {
	workers   int
	batchSize int
	exp       *expander
}

func newCoordinator(workers, batchSize int, exp *expander) *coordinator {
	return &coordinator{workers: workers, batchSize: batchSize, exp: exp}
}

// runLevel executes one superstep's parallel phase: partition, expand+filter
// per batch, barrier. Results are merged in batch order and tagged with
// their merge sequence, independent of worker scheduling. Any task failure
// aborts the whole level and discards partial results.
func (co *coordinator) runLevel(ctx context.Context, frontier []*Candidate, level, target int) ([]*Candidate, batchStats, error) {
	numBatches := (len(frontier) + co.batchSize - 1) / co.batchSize
	results := make([][]*Candidate, numBatches)
	stats := make([]batchStats, numBatches)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(co.workers)

	for i := 0; i < numBatches; i++ {
		i := i
		lo := i * co.batchSize
		hi := min(lo+co.batchSize, len(frontier))
		batch := frontier[lo:hi]

		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = &WorkerError{Level: level, Batch: i, cause: fmt.Errorf("panic: %v", r)}
				}
			}()

			if cerr := gctx.Err(); cerr != nil {
				return cerr
			}

			results[i], stats[i] = co.exp.expandBatch(batch, level, target)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		var we *WorkerError
		if !errors.As(err, &we) {
			err = &WorkerError{Level: level, Batch: -1, cause: err}
		}
		return nil, batchStats{}, err
	}

	var total batchStats
	var merged []*Candidate
	for i := range results {
		merged = append(merged, results[i]...)
		total.add(stats[i])
	}
	for i, c := range merged {
		c.seq = uint64(i)
	}

	return merged, total, nil
}
