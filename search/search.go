package search

import (
	"context"
	"io"
	"log/slog"
	"math/big"
	"runtime"
	"time"

	"golang.org/x/time/rate"

	"github.com/hupe1980/factorgo/constraint"
	"github.com/hupe1980/factorgo/digit"
	"github.com/hupe1980/factorgo/orbit"
)

// Status is the terminal state of a run.
type Status int

const (
	// StatusFound means a candidate passed exact verification.
	StatusFound Status = iota

	// StatusExhausted means the frontier emptied (or the level cap was hit)
	// before the last digit level.
	StatusExhausted

	// StatusBeamMiss means candidates survived every level but none of them
	// verified.
	StatusBeamMiss
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusExhausted:
		return "exhausted"
	case StatusBeamMiss:
		return "beam_miss"
	default:
		return "unknown"
	}
}

// Result is the outcome of one run. P and Q are set only for StatusFound;
// Diagnostics is always populated.
type Result struct {
	Status      Status      `json:"status"`
	P           *big.Int    `json:"p,omitempty"`
	Q           *big.Int    `json:"q,omitempty"`
	Diagnostics Diagnostics `json:"diagnostics"`
}

// Config collects everything one engine needs. The zero value is not usable;
// defaults are applied by New.
type Config struct {
	// Radix is the base of the digit representation. Default 96.
	Radix int

	// Generators is the transformation set the orbit table is built from.
	// Opaque to the engine. Required.
	Generators []orbit.Generator

	// Seed is the canonical orbit seed residue. Default 1.
	Seed int

	// MaxHops bounds the orbit traversal depth. Zero means unbounded.
	MaxHops int

	// Slack is the epsilon of the constraint table's orbit inequality.
	// Default 1.
	Slack int

	// Policy selects the scoring policy. Default PolicyHybrid.
	Policy Policy

	// BeamWidth is the base number of candidates retained per level.
	// Default 64.
	BeamWidth int

	// Adaptive resizes the beam each level from the observed violation
	// rate, clamped to [MinWidth, MaxWidth].
	Adaptive bool
	MinWidth int
	MaxWidth int

	// Workers bounds parallel batch execution. Default GOMAXPROCS.
	Workers int

	// BatchSize is the number of frontier candidates per task. Default 64.
	BatchSize int

	// MaxLevels caps the number of digit levels explored. Zero means no
	// cap. A capped run that would need more levels ends as exhausted.
	MaxLevels int

	// Logger receives per-level progress at debug level. Nil disables.
	Logger *slog.Logger
}

func (c *Config) applyDefaults() {
	if c.Radix == 0 {
		c.Radix = 96
	}
	if c.Seed == 0 {
		c.Seed = 1
	}
	if c.BeamWidth == 0 {
		c.BeamWidth = 64
	}
	if c.Adaptive {
		if c.MinWidth == 0 {
			c.MinWidth = 1
		}
		if c.MaxWidth == 0 {
			c.MaxWidth = 8 * c.BeamWidth
		}
	}
	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	if c.BatchSize == 0 {
		c.BatchSize = 64
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
}

func (c *Config) validate() error {
	if c.BeamWidth < 1 {
		return ErrInvalidBeamWidth
	}
	if c.Adaptive && (c.MinWidth < 1 || c.MinWidth > c.MaxWidth) {
		return ErrInvalidWidthBounds
	}
	if c.BatchSize < 1 {
		return ErrInvalidBatchSize
	}
	if !c.Policy.valid() {
		return ErrInvalidPolicy
	}
	return nil
}

// Engine runs digit-reconstruction searches against one target. The tables
// are built once by New and shared, read-only, by every worker of every run;
// a single Engine may serve concurrent Run calls.
type Engine struct {
	cfg    Config
	n      *big.Int
	digits []int

	set    *digit.Set
	orbits *orbit.Table
	table  *constraint.Table
	scorer *scorer

	log *slog.Logger
}

// New validates the configuration, decomposes the target, and builds the
// orbit and constraint tables. All configuration errors surface here, before
// any search work begins.
func New(n *big.Int, cfg Config) (*Engine, error) {
	if n == nil {
		return nil, ErrNilTarget
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	digits, err := digit.Decompose(n, cfg.Radix)
	if err != nil {
		return nil, err
	}

	set, err := digit.NewSet(cfg.Radix)
	if err != nil {
		return nil, err
	}

	orbits, err := orbit.Build(cfg.Radix, cfg.Generators, func(o *orbit.Options) {
		o.Seed = cfg.Seed
		o.MaxHops = cfg.MaxHops
	})
	if err != nil {
		return nil, err
	}

	table, err := constraint.Build(set, orbits, func(o *constraint.Options) {
		o.Slack = cfg.Slack
	})
	if err != nil {
		return nil, err
	}

	return &Engine{
		cfg:    cfg,
		n:      new(big.Int).Set(n),
		digits: digits,
		set:    set,
		orbits: orbits,
		table:  table,
		scorer: newScorer(cfg.Policy, orbits, table),
		log:    cfg.Logger,
	}, nil
}

// Target returns a copy of the integer being factored.
func (e *Engine) Target() *big.Int { return new(big.Int).Set(e.n) }

// Digits returns the target's digit sequence, least-significant first.
// Callers must not modify the returned slice.
func (e *Engine) Digits() []int { return e.digits }

// Run executes one search. Cancellation is honored at level boundaries
// only; candidates are immutable value records produced fresh each level, so
// an abort never leaves partial state behind.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	co := newCoordinator(e.cfg.Workers, e.cfg.BatchSize, newExpander(e.set, e.table))
	sel := newSelector(e.cfg.BeamWidth, e.cfg.MinWidth, e.cfg.MaxWidth, e.cfg.Adaptive)
	progress := rate.NewLimiter(rate.Every(time.Second), 1)

	levels := e.digits
	capped := false
	if e.cfg.MaxLevels > 0 && e.cfg.MaxLevels < len(levels) {
		levels = levels[:e.cfg.MaxLevels]
		capped = true
	}

	frontier := []*Candidate{newRoot()}
	diag := Diagnostics{}
	finish := func(status Status, p, q *big.Int) *Result {
		diag.ElapsedNanos = time.Since(start).Nanoseconds()
		return &Result{Status: status, P: p, Q: q, Diagnostics: diag}
	}

	for level, target := range levels {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		ld := LevelDiagnostics{
			Level:       level,
			TargetDigit: target,
			FrontierIn:  len(frontier),
		}

		children, stats, err := co.runLevel(ctx, frontier, level, target)
		if err != nil {
			return nil, err
		}

		ld.Generated = stats.generated
		ld.Pruned = stats.pruned
		if stats.generated > 0 {
			ld.ViolationRate = float64(stats.pruned) / float64(stats.generated)
		}

		if len(children) == 0 {
			ld.BeamWidth = sel.width
			diag.record(ld)
			return finish(StatusExhausted, nil, nil), nil
		}

		for _, c := range children {
			e.scorer.score(c)
		}

		ld.BeamWidth = sel.resize(ld.ViolationRate)
		frontier = sel.selectTop(children)
		ld.FrontierOut = len(frontier)
		diag.record(ld)

		if progress.Allow() {
			e.log.DebugContext(ctx, "level completed",
				"level", level,
				"generated", ld.Generated,
				"pruned", ld.Pruned,
				"violation_rate", ld.ViolationRate,
				"beam_width", ld.BeamWidth,
				"frontier", ld.FrontierOut,
			)
		}
	}

	if capped {
		return finish(StatusExhausted, nil, nil), nil
	}

	p, q, checked := verify(frontier, e.n, e.cfg.Radix)
	diag.Verified = checked
	if p == nil {
		return finish(StatusBeamMiss, nil, nil), nil
	}

	return finish(StatusFound, p, q), nil
}
