// Package digit converts arbitrary-precision integers to and from positional
// digit sequences in a configurable radix, and exposes the admissible digit
// set used by the factor search: zero plus every residue coprime to the radix.
//
// All conversions are exact. Decompose and Compose are inverses for every
// non-negative integer and every radix >= 2.
package digit
