// Package constraint precomputes which (target digit, factor digit, factor
// digit) triples the search may branch on.
//
// A pair (p, q) of nonzero admissible digits is admissible for target digit d
// iff p*q mod b == d and the orbit distance of the product does not exceed
// the sum of the factor distances plus a configured slack. The second check
// is a heuristic generalization of a triangle inequality over the orbit
// metric, not a proven bound: pruning on it trades completeness for speed.
//
// The table is built once, is immutable afterward, and is shared by every
// worker without locking.
package constraint
