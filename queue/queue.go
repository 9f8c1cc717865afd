// Package queue provides the bounded score-ordered heap backing beam
// selection.
package queue

import "container/heap"

// Compile time check to ensure BeamQueue satisfies the heap interface.
var _ heap.Interface = (*BeamQueue)(nil)

// BeamQueueItem represents one ranked candidate in the beam queue.
type BeamQueueItem struct {
	Ref   int     // Ref indexes the caller's candidate slice.
	Score float64 // Score is the ranking priority, higher is better.
	Seq   uint64  // Seq breaks score ties; lower wins.
	Index int     // Index is maintained by the heap.Interface methods.
}

// BeamQueue implements heap.Interface with the worst-ranked item on top, so
// bounded top-K selection can evict the loser in O(log n). The ordering is
// total: equal scores fall back to insertion sequence, keeping selection
// reproducible across runs.
type BeamQueue struct {
	Items []*BeamQueueItem // Items contains the elements of the queue.
}

// Len returns the number of elements in the queue.
func (bq *BeamQueue) Len() int { return len(bq.Items) }

// Less reports whether the element with index i ranks worse than the element
// with index j.
func (bq *BeamQueue) Less(i, j int) bool {
	if bq.Items[i].Score != bq.Items[j].Score {
		return bq.Items[i].Score < bq.Items[j].Score
	}
	return bq.Items[i].Seq > bq.Items[j].Seq
}

// Swap swaps the elements with indexes i and j.
func (bq *BeamQueue) Swap(i, j int) {
	bq.Items[i], bq.Items[j] = bq.Items[j], bq.Items[i]
	bq.Items[i].Index, bq.Items[j].Index = i, j // Update indices
}

// Push adds x to the queue.
func (bq *BeamQueue) Push(x any) {
	item, _ := x.(*BeamQueueItem)
	item.Index = len(bq.Items)
	bq.Items = append(bq.Items, item)
}

// Pop removes and returns the worst-ranked element from the queue.
func (bq *BeamQueue) Pop() any {
	if len(bq.Items) == 0 {
		return nil
	}

	old := bq.Items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil  // Avoid memory leak
	item.Index = -1 // For safety
	bq.Items = old[:n-1]

	return item
}

// Top returns the worst-ranked element without removing it.
func (bq *BeamQueue) Top() any {
	return bq.Items[0]
}
