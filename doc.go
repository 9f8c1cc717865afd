// Package factorgo searches for a factorization of an integer by
// reconstructing the radix digits of its two factors one position at a time,
// pruning branches with a precomputed orbit-distance constraint table and a
// score-ordered beam, and verifying every surviving candidate with exact
// arbitrary-precision arithmetic.
//
// The search is heuristic and deliberately incomplete: the beam can discard
// the branch that leads to the true factorization. What it never does is
// report a wrong answer - acceptance rests solely on the exact verifier.
//
// Basic usage:
//
//	f, err := factorgo.New(big.NewInt(323)).
//	    Radix(96).
//	    Generators(orbit.MulGenerators(96, 5, 7, 11)...).
//	    BeamWidth(64).
//	    HybridScoring().
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := f.Run(context.Background())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Status == search.StatusFound {
//	    fmt.Println(res.P, "*", res.Q)
//	}
package factorgo
