// Package search implements the digit-by-digit factorization search engine.
//
// The engine reconstructs the radix digits of two factors of a target
// integer one position at a time, inverting schoolbook long multiplication:
// at each level it enumerates every admissible digit pair whose partial
// convolution matches the target digit, drops pairs the constraint table
// rejects, scores the survivors, and keeps the top-K under a beam policy.
//
// Each level is one superstep: the frontier is partitioned into batches that
// expand and filter in parallel against shared read-only tables, all batches
// join at a barrier, and a single-threaded merge/score/select pass runs over
// the unioned results. Selection therefore sees the global ranking, and the
// chosen beam is invariant under worker count and batch size.
//
// Beam pruning trades completeness for tractability: a branch leading to the
// true factorization can rank outside the beam and be lost. Acceptance never
// depends on the heuristic - every surviving candidate is verified with
// exact arbitrary-precision arithmetic before it is reported.
package search
