package constraint

import (
	"errors"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/factorgo/digit"
	"github.com/hupe1980/factorgo/orbit"
)

// ErrInvalidSlack is returned when the slack parameter is negative.
var ErrInvalidSlack = errors.New("constraint: slack must be >= 0")

// ErrRadixMismatch indicates the digit set and orbit table disagree on radix.
type ErrRadixMismatch struct {
	SetRadix   int
	OrbitRadix int
}

func (e *ErrRadixMismatch) Error() string {
	return fmt.Sprintf("constraint: digit set radix %d != orbit table radix %d", e.SetRadix, e.OrbitRadix)
}

// Options configures table construction.
type Options struct {
	// Slack is the epsilon added to the distance sum before comparing
	// against the product's distance. Larger values prune less.
	Slack int
}

var DefaultOptions = Options{
	Slack: 1,
}

// Table answers admissibility queries for digit-pair branches. Rows are
// bitmaps of admissible q digits keyed by (target digit, p digit).
type Table struct {
	radix  int
	slack  int
	orbits *orbit.Table
	rows   []*roaring.Bitmap
}

// Build enumerates every nonzero admissible pair once; cost is O(b * r^2)
// for r admissible digits.
func Build(set *digit.Set, orbits *orbit.Table, optFns ...func(o *Options)) (*Table, error) {
	if set.Radix() != orbits.Radix() {
		return nil, &ErrRadixMismatch{SetRadix: set.Radix(), OrbitRadix: orbits.Radix()}
	}

	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Slack < 0 {
		return nil, ErrInvalidSlack
	}

	b := set.Radix()
	t := &Table{
		radix:  b,
		slack:  opts.Slack,
		orbits: orbits,
		rows:   make([]*roaring.Bitmap, b*b),
	}

	for _, p := range set.Digits() {
		if p == 0 {
			continue
		}
		dp := orbits.Distance(p)
		for _, q := range set.Digits() {
			if q == 0 {
				continue
			}
			prod := (p * q) % b
			if orbits.Distance(prod) > dp+orbits.Distance(q)+opts.Slack {
				continue
			}
			idx := prod*b + p
			if t.rows[idx] == nil {
				t.rows[idx] = roaring.New()
			}
			t.rows[idx].Add(uint32(q))
		}
	}

	return t, nil
}

// Admissible reports whether the (d, p, q) branch passes the orbit
// inequality. Branches with a padding zero on either side always pass;
// zero-padding is structurally required and never filtered.
func (t *Table) Admissible(d, p, q int) bool {
	if p == 0 || q == 0 {
		return true
	}
	if d < 0 || d >= t.radix || p < 0 || p >= t.radix || q < 0 || q >= t.radix {
		return false
	}
	row := t.rows[d*t.radix+p]
	return row != nil && row.Contains(uint32(q))
}

// Margin returns dist(p) + dist(q) + slack - dist(p*q mod b). Non-negative
// margins mean the pair satisfies the orbit inequality; the magnitude is
// used by the constraint-satisfaction scorer.
func (t *Table) Margin(p, q int) int {
	return t.orbits.Distance(p) + t.orbits.Distance(q) + t.slack - t.orbits.Distance((p*q)%t.radix)
}

// Slack returns the configured slack.
func (t *Table) Slack() int { return t.slack }

// Radix returns the radix the table was built for.
func (t *Table) Radix() int { return t.radix }
