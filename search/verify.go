package search

import (
	"math/big"

	"github.com/hupe1980/factorgo/digit"
)

// verify reconstructs each surviving candidate with exact arithmetic and
// returns the first nontrivial pair whose product equals the target.
// Candidates are checked in beam rank order; checked reports how many were
// examined before acceptance (or all of them on miss).
//
// Correctness never rests on the heuristic filter: a candidate is accepted
// here or not at all.
func verify(frontier []*Candidate, n *big.Int, radix int) (p, q *big.Int, checked int) {
	one := big.NewInt(1)
	prod := new(big.Int)

	for _, c := range frontier {
		checked++

		cp, err := digit.Compose(c.P, radix)
		if err != nil {
			continue
		}
		cq, err := digit.Compose(c.Q, radix)
		if err != nil {
			continue
		}

		// 1*n and n*1 are reconstructions, not factorizations.
		if cp.Cmp(one) <= 0 || cq.Cmp(one) <= 0 {
			continue
		}

		if prod.Mul(cp, cq).Cmp(n) == 0 {
			return cp, cq, checked
		}
	}

	return nil, nil, checked
}
