// Package factorgo provides a heuristic digit-reconstruction factorization
// search engine.
//
// This file implements the fluent builder API for creating and configuring
// Factorizer instances. The builder is immutable - each method returns a new
// builder with the updated configuration.
package factorgo

import (
	"math/big"

	"github.com/hupe1980/factorgo/codec"
	"github.com/hupe1980/factorgo/orbit"
	"github.com/hupe1980/factorgo/report"
	"github.com/hupe1980/factorgo/resource"
	"github.com/hupe1980/factorgo/search"
)

// New creates a builder for factorizing n.
//
// Example:
//
//	f, err := factorgo.New(big.NewInt(323)).
//	    Radix(96).
//	    Generators(orbit.MulGenerators(96, 5, 7, 11)...).
//	    Slack(2).
//	    BeamWidth(64).
//	    AdaptiveBeam(8, 512).
//	    Workers(4).
//	    Build()
func New(n *big.Int) Builder {
	return Builder{
		n:         n,
		radix:     96,
		seed:      1,
		slack:     1,
		policy:    search.PolicyHybrid,
		beamWidth: 64,
		minWidth:  8,
		maxWidth:  512,
		adaptive:  true,
		batchSize: 64,
	}
}

// Builder is an immutable fluent builder for creating Factorizer instances.
// Each method returns a new builder with the updated configuration.
type Builder struct {
	n          *big.Int
	radix      int
	generators []orbit.Generator
	seed       int
	maxHops    int
	slack      int

	policy    search.Policy
	beamWidth int
	minWidth  int
	maxWidth  int
	adaptive  bool

	workers   int
	batchSize int
	maxLevels int

	logger            *Logger
	metrics           MetricsCollector
	codec             codec.Codec
	reportPath        string
	reportCompression report.Compression
	maxConcurrentRuns int64
}

// Radix sets the base of the digit representation. Default: 96.
func (b Builder) Radix(radix int) Builder {
	b.radix = radix
	return b
}

// Generators sets the residue transformation set the orbit table is built
// from. The set is opaque to the engine. Required.
func (b Builder) Generators(gens ...orbit.Generator) Builder {
	b.generators = gens
	return b
}

// Seed sets the canonical orbit seed residue. Must be coprime to the radix.
// Default: 1.
func (b Builder) Seed(seed int) Builder {
	b.seed = seed
	return b
}

// MaxHops bounds the orbit traversal depth. Residues beyond the bound keep
// the unreachable sentinel. Default: unbounded.
func (b Builder) MaxHops(hops int) Builder {
	b.maxHops = hops
	return b
}

// Slack sets the epsilon of the constraint table's orbit inequality.
// Larger values prune less. Default: 1.
func (b Builder) Slack(slack int) Builder {
	b.slack = slack
	return b
}

// HybridScoring ranks candidates by 0.7 constraint satisfaction plus 0.3
// orbit distance. This is the default.
func (b Builder) HybridScoring() Builder {
	b.policy = search.PolicyHybrid
	return b
}

// ConstraintScoring ranks candidates by the fraction of digit pairs whose
// orbit-inequality margin is non-negative.
func (b Builder) ConstraintScoring() Builder {
	b.policy = search.PolicyConstraint
	return b
}

// OrbitScoring ranks candidates by the average orbit distance of the digits
// they use, favoring low distances.
func (b Builder) OrbitScoring() Builder {
	b.policy = search.PolicyOrbit
	return b
}

// BeamWidth sets the base number of candidates retained per level.
// Default: 64.
func (b Builder) BeamWidth(w int) Builder {
	b.beamWidth = w
	return b
}

// AdaptiveBeam resizes the beam each level from the observed filter
// violation rate, clamped to [min, max]. This is the default with
// bounds 8 and 512.
func (b Builder) AdaptiveBeam(min, max int) Builder {
	b.adaptive = true
	b.minWidth = min
	b.maxWidth = max
	return b
}

// FixedBeam disables adaptive resizing; the base width is used at every
// level.
func (b Builder) FixedBeam() Builder {
	b.adaptive = false
	return b
}

// Workers bounds parallel batch execution. Default: GOMAXPROCS.
func (b Builder) Workers(n int) Builder {
	b.workers = n
	return b
}

// BatchSize sets the number of frontier candidates per worker task.
// Default: 64.
func (b Builder) BatchSize(n int) Builder {
	b.batchSize = n
	return b
}

// MaxLevels caps the number of digit levels explored. A capped run that
// would need more levels ends as exhausted. Default: no cap.
func (b Builder) MaxLevels(n int) Builder {
	b.maxLevels = n
	return b
}

// Logger sets the structured logger for run tracing.
func (b Builder) Logger(l *Logger) Builder {
	b.logger = l
	return b
}

// Metrics sets the metrics collector for monitoring.
func (b Builder) Metrics(mc MetricsCollector) Builder {
	b.metrics = mc
	return b
}

// Codec sets the codec for report payloads.
func (b Builder) Codec(c codec.Codec) Builder {
	b.codec = c
	return b
}

// Report enables writing a diagnostics report after every run.
func (b Builder) Report(path string, compression report.Compression) Builder {
	b.reportPath = path
	b.reportCompression = compression
	return b
}

// MaxConcurrentRuns bounds how many Run calls may execute at once.
// Default: unbounded.
func (b Builder) MaxConcurrentRuns(n int64) Builder {
	b.maxConcurrentRuns = n
	return b
}

// Build creates the Factorizer.
func (b Builder) Build() (*Factorizer, error) {
	cfg := search.Config{
		Radix:      b.radix,
		Generators: b.generators,
		Seed:       b.seed,
		MaxHops:    b.maxHops,
		Slack:      b.slack,
		Policy:     b.policy,
		BeamWidth:  b.beamWidth,
		Adaptive:   b.adaptive,
		MinWidth:   b.minWidth,
		MaxWidth:   b.maxWidth,
		Workers:    b.workers,
		BatchSize:  b.batchSize,
		MaxLevels:  b.maxLevels,
	}

	var optFns []Option
	if b.logger != nil {
		optFns = append(optFns, WithLogger(b.logger))
	}
	if b.metrics != nil {
		optFns = append(optFns, WithMetricsCollector(b.metrics))
	}
	if b.codec != nil {
		optFns = append(optFns, WithCodec(b.codec))
	}
	if b.reportPath != "" {
		optFns = append(optFns, WithReport(b.reportPath, b.reportCompression))
	}
	if b.maxConcurrentRuns > 0 {
		optFns = append(optFns, WithResourceController(resource.NewController(resource.Config{
			MaxConcurrentRuns: b.maxConcurrentRuns,
		})))
	}

	return NewFactorizer(b.n, cfg, optFns...)
}

// MustBuild creates the Factorizer, panicking on error.
func (b Builder) MustBuild() *Factorizer {
	f, err := b.Build()
	if err != nil {
		panic(err)
	}
	return f
}
