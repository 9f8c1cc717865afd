package search

import (
	"fmt"

	"github.com/hupe1980/factorgo/constraint"
	"github.com/hupe1980/factorgo/orbit"
)

// Policy selects how candidates are ranked before beam selection.
type Policy int

const (
	// PolicyHybrid blends the other two policies, weighted 0.7 constraint
	// satisfaction and 0.3 orbit distance.
	PolicyHybrid Policy = iota

	// PolicyConstraint ranks by the fraction of a candidate's nonzero digit
	// pairs whose orbit-inequality margin is non-negative, with a small
	// bonus proportional to the average margin.
	PolicyConstraint

	// PolicyOrbit favors candidates whose nonzero digits sit close to the
	// seed in the orbit metric.
	PolicyOrbit
)

func (p Policy) String() string {
	switch p {
	case PolicyHybrid:
		return "hybrid"
	case PolicyConstraint:
		return "constraint"
	case PolicyOrbit:
		return "orbit"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

func (p Policy) valid() bool {
	return p == PolicyHybrid || p == PolicyConstraint || p == PolicyOrbit
}

const (
	// marginBonus scales the constraint scorer's per-pair margin bonus.
	marginBonus = 0.01

	// orbitDamping controls how quickly the orbit score decays with the
	// average distance of the digits used.
	orbitDamping = 0.25

	hybridConstraintWeight = 0.7
	hybridOrbitWeight      = 0.3
)

// scorer is a pure, deterministic function of a candidate's digit history.
// It writes nothing but the candidate's own score field and is safe for
// concurrent use.
type scorer struct {
	policy Policy
	orbits *orbit.Table
	table  *constraint.Table
}

func newScorer(policy Policy, orbits *orbit.Table, table *constraint.Table) *scorer {
	return &scorer{policy: policy, orbits: orbits, table: table}
}

// score computes and caches the candidate's score.
func (s *scorer) score(c *Candidate) float64 {
	var v float64
	switch s.policy {
	case PolicyConstraint:
		v = s.constraintScore(c)
	case PolicyOrbit:
		v = s.orbitScore(c)
	default:
		v = hybridConstraintWeight*s.constraintScore(c) + hybridOrbitWeight*s.orbitScore(c)
	}
	c.Score = v
	return v
}

func (s *scorer) constraintScore(c *Candidate) float64 {
	var pairs, satisfied, marginSum int
	for i := range c.P {
		p, q := c.Pair(i)
		if p == 0 || q == 0 {
			continue
		}
		pairs++
		if m := s.table.Margin(p, q); m >= 0 {
			satisfied++
			// Sentinel distances satisfy the inequality trivially; their
			// margins carry no information and would swamp the bonus.
			if s.orbits.Reachable(p) && s.orbits.Reachable(q) {
				marginSum += m
			}
		}
	}
	if pairs == 0 {
		// Nothing but padding so far; neutral perfect score.
		return 1
	}
	return float64(satisfied)/float64(pairs) + marginBonus*float64(marginSum)/float64(pairs)
}

func (s *scorer) orbitScore(c *Candidate) float64 {
	var sum, n int
	for i := range c.P {
		p, q := c.Pair(i)
		if p != 0 {
			sum += s.orbits.Distance(p)
			n++
		}
		if q != 0 {
			sum += s.orbits.Distance(q)
			n++
		}
	}
	if n == 0 {
		return 1
	}
	return 1 / (1 + orbitDamping*float64(sum)/float64(n))
}
