// Package orbit builds shortest-path distance tables over the residues of a
// radix under a caller-supplied set of transformation functions.
//
// The table records, for every residue, the minimum number of generator
// applications needed to reach it from a canonical seed residue. Residues the
// traversal never reaches keep the Unreachable sentinel. The generator set is
// opaque to this package: a generator is any residue -> residue function.
//
// A Table is built exactly once per configuration and is immutable afterward,
// so it may be shared across goroutines without synchronization.
package orbit
