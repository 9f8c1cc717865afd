package search

import (
	"math/big"

	"github.com/hupe1980/factorgo/constraint"
	"github.com/hupe1980/factorgo/digit"
)

// batchStats counts one batch's expansion outcome. generated is the number
// of digit-matching branches emitted by the expander; pruned is how many of
// those the constraint filter rejected.
type batchStats struct {
	generated int
	pruned    int
}

func (s *batchStats) add(o batchStats) {
	s.generated += o.generated
	s.pruned += o.pruned
}

// expander generates next-level branches for candidates. It reads only the
// shared immutable tables and is safe for concurrent use.
type expander struct {
	set   *digit.Set
	table *constraint.Table
	radix *big.Int
}

func newExpander(set *digit.Set, table *constraint.Table) *expander {
	return &expander{
		set:   set,
		table: table,
		radix: big.NewInt(int64(set.Radix())),
	}
}

// expandBatch runs Expander then Filter over one batch of the frontier.
// Children are emitted in a deterministic order: parent order, then
// ascending (p, q) pairs.
func (e *expander) expandBatch(batch []*Candidate, level, target int) ([]*Candidate, batchStats) {
	var (
		children []*Candidate
		stats    batchStats
	)

	for _, c := range batch {
		kids, st := e.expand(c, level, target)
		children = append(children, kids...)
		stats.add(st)
	}

	return children, stats
}

// expand inverts one column of schoolbook multiplication: it enumerates
// every admissible pair (p, q) placed at position level such that
//
//	carry + sum_{j=0..level} P[j]*Q[level-j]  ==  target  (mod radix)
//
// and emits the branch with the overflow carried to the next level. All
// sums are held in big.Int so no width ever silently wraps.
func (e *expander) expand(c *Candidate, level, target int) ([]*Candidate, batchStats) {
	var stats batchStats

	// Convolution terms not involving the two new digits.
	base := new(big.Int).Set(c.Carry)
	tmp := new(big.Int)
	for j := 1; j < level; j++ {
		tmp.SetInt64(int64(c.P[j]) * int64(c.Q[level-j]))
		base.Add(base, tmp)
	}

	var (
		children []*Candidate
		sum      = new(big.Int)
		mod      = new(big.Int)
	)

	for _, p := range e.set.Digits() {
		for _, q := range e.set.Digits() {
			sum.Set(base)
			if level == 0 {
				sum.Add(sum, tmp.SetInt64(int64(p)*int64(q)))
			} else {
				cross := int64(c.P[0])*int64(q) + int64(p)*int64(c.Q[0])
				sum.Add(sum, tmp.SetInt64(cross))
			}

			mod.Mod(sum, e.radix)
			if mod.Int64() != int64(target) {
				continue
			}
			stats.generated++

			if p != 0 && q != 0 && !e.table.Admissible(target, p, q) {
				stats.pruned++
				continue
			}

			carry := new(big.Int).Div(sum, e.radix)
			children = append(children, c.child(p, q, carry))
		}
	}

	return children, stats
}
