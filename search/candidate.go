package search

import "math/big"

// Candidate is a partial reconstruction of the two factors: one digit of
// each factor per completed level, least-significant first, plus the
// multiplication carry pending at the next level.
//
// Candidates are value records. Expansion allocates fresh children and never
// mutates a parent; once a level completes, only the selected children are
// retained, so no back-references accumulate.
type Candidate struct {
	P     []int    // digits of the first factor, len == Level
	Q     []int    // digits of the second factor, len == Level
	Carry *big.Int // pending carry into the next level
	Level int
	Score float64 // cached by the scorer, valid after scoring

	seq uint64 // merge-order sequence, breaks score ties
}

// newRoot returns the empty candidate the level-0 frontier starts from.
func newRoot() *Candidate {
	return &Candidate{Carry: new(big.Int)}
}

// child extends c by one digit pair. The carry is owned by the child.
func (c *Candidate) child(p, q int, carry *big.Int) *Candidate {
	np := make([]int, len(c.P)+1)
	copy(np, c.P)
	np[len(c.P)] = p

	nq := make([]int, len(c.Q)+1)
	copy(nq, c.Q)
	nq[len(c.Q)] = q

	return &Candidate{
		P:     np,
		Q:     nq,
		Carry: carry,
		Level: c.Level + 1,
	}
}

// Pair returns the digit pair chosen at level i. The digit sequences double
// as the audit trail of choices.
func (c *Candidate) Pair(i int) (p, q int) {
	return c.P[i], c.Q[i]
}
