package orbit

import (
	"errors"
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"
)

// Unreachable is the sentinel distance assigned to residues the traversal
// never reaches.
const Unreachable = math.MaxInt32

var (
	// ErrInvalidRadix is returned when the radix is smaller than 2.
	ErrInvalidRadix = errors.New("orbit: radix must be >= 2")

	// ErrNoGenerators is returned when the generator set is empty.
	ErrNoGenerators = errors.New("orbit: at least one generator is required")

	// ErrSeedNotCoprime is returned when the seed residue shares a factor
	// with the radix.
	ErrSeedNotCoprime = errors.New("orbit: seed must be coprime to the radix")
)

// ErrResidueRange indicates a generator produced a residue outside [0, radix).
type ErrResidueRange struct {
	Residue int
	Radix   int
}

func (e *ErrResidueRange) Error() string {
	return fmt.Sprintf("orbit: generator produced residue %d, want [0,%d)", e.Residue, e.Radix)
}

// Generator maps a residue in [0, b) to another residue in [0, b).
type Generator func(r int) int

// Options configures table construction.
type Options struct {
	// Seed is the canonical start residue. Must be coprime to the radix.
	Seed int

	// MaxHops bounds the traversal depth. Residues beyond the bound keep
	// the Unreachable sentinel. Zero means unbounded.
	MaxHops int
}

var DefaultOptions = Options{
	Seed: 1,
}

// Table maps each residue to its minimum hop count from the seed under the
// generator set. Immutable once built.
type Table struct {
	radix int
	seed  int
	dist  []int
}

// Build performs a breadth-first traversal of the directed multigraph induced
// by applying each generator to each residue, recording minimum hop counts.
func Build(b int, gens []Generator, optFns ...func(o *Options)) (*Table, error) {
	if b < 2 {
		return nil, ErrInvalidRadix
	}
	if len(gens) == 0 {
		return nil, ErrNoGenerators
	}

	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Seed < 0 || opts.Seed >= b || gcd(opts.Seed, b) != 1 {
		return nil, ErrSeedNotCoprime
	}

	dist := make([]int, b)
	for i := range dist {
		dist[i] = Unreachable
	}

	visited := bitset.New(uint(b))
	visited.Set(uint(opts.Seed))
	dist[opts.Seed] = 0

	queue := []int{opts.Seed}
	for len(queue) > 0 {
		r := queue[0]
		queue = queue[1:]

		d := dist[r]
		if opts.MaxHops > 0 && d >= opts.MaxHops {
			continue
		}

		for _, gen := range gens {
			next := gen(r)
			if next < 0 || next >= b {
				return nil, &ErrResidueRange{Residue: next, Radix: b}
			}
			if visited.Test(uint(next)) {
				continue
			}
			visited.Set(uint(next))
			dist[next] = d + 1
			queue = append(queue, next)
		}
	}

	return &Table{radix: b, seed: opts.Seed, dist: dist}, nil
}

// Distance returns the minimum hop count from the seed to r, or Unreachable
// if the traversal never reached r or r is out of range.
func (t *Table) Distance(r int) int {
	if r < 0 || r >= t.radix {
		return Unreachable
	}
	return t.dist[r]
}

// Reachable reports whether r was reached by the traversal.
func (t *Table) Reachable(r int) bool {
	return t.Distance(r) != Unreachable
}

// Radix returns the radix the table was built for.
func (t *Table) Radix() int { return t.radix }

// Seed returns the canonical seed residue.
func (t *Table) Seed() int { return t.seed }

// MulGenerators returns one generator per multiplier k, each mapping a
// residue r to k*r mod b. A convenience for callers without a bespoke
// transformation set; the search core treats the result as opaque.
func MulGenerators(b int, ks ...int) []Generator {
	gens := make([]Generator, 0, len(ks))
	for _, k := range ks {
		k := ((k % b) + b) % b
		gens = append(gens, func(r int) int {
			return (k * r) % b
		})
	}
	return gens
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
