package search

import (
	"container/heap"
	"math"

	"github.com/hupe1980/factorgo/queue"
)

// selector retains the top-K candidates of a merged frontier. One selector
// serves one run; its width evolves level by level in adaptive mode.
type selector struct {
	base     int
	minWidth int
	maxWidth int
	adaptive bool
	width    int
}

func newSelector(base, minWidth, maxWidth int, adaptive bool) *selector {
	return &selector{
		base:     base,
		minWidth: minWidth,
		maxWidth: maxWidth,
		adaptive: adaptive,
		width:    base,
	}
}

// resize recomputes the beam width from the level's observed violation rate,
// the fraction of generated branches the filter rejected. High rejection
// widens the beam (the filter is aggressive, keep more survivors); low
// rejection narrows it. The result is clamped to the configured bounds.
func (s *selector) resize(violationRate float64) int {
	if !s.adaptive {
		s.width = s.base
		return s.width
	}

	w := s.base + int(math.Floor((violationRate-0.5)*float64(s.base)))
	if w < s.minWidth {
		w = s.minWidth
	}
	if w > s.maxWidth {
		w = s.maxWidth
	}
	s.width = w

	return s.width
}

// selectTop returns the best-scored width candidates in rank order. Ties
// break on the merge sequence number, so the outcome is a total, reproducible
// order independent of how the frontier was batched.
func (s *selector) selectTop(frontier []*Candidate) []*Candidate {
	if len(frontier) <= s.width {
		out := make([]*Candidate, len(frontier))
		copy(out, frontier)
		sortByRank(out)
		return out
	}

	bq := &queue.BeamQueue{Items: make([]*queue.BeamQueueItem, 0, s.width+1)}
	for i, c := range frontier {
		heap.Push(bq, &queue.BeamQueueItem{Ref: i, Score: c.Score, Seq: c.seq})
		if bq.Len() > s.width {
			heap.Pop(bq)
		}
	}

	out := make([]*Candidate, bq.Len())
	for i := bq.Len() - 1; i >= 0; i-- {
		item, _ := heap.Pop(bq).(*queue.BeamQueueItem)
		out[i] = frontier[item.Ref]
	}

	return out
}

// sortByRank orders candidates best-first: score descending, sequence
// ascending on ties.
func sortByRank(cands []*Candidate) {
	bq := &queue.BeamQueue{Items: make([]*queue.BeamQueueItem, 0, len(cands))}
	tmp := make([]*Candidate, len(cands))
	copy(tmp, cands)
	for i, c := range tmp {
		heap.Push(bq, &queue.BeamQueueItem{Ref: i, Score: c.Score, Seq: c.seq})
	}
	for i := bq.Len() - 1; i >= 0; i-- {
		item, _ := heap.Pop(bq).(*queue.BeamQueueItem)
		cands[i] = tmp[item.Ref]
	}
}
