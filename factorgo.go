package factorgo

import (
	"context"
	"math/big"
	"time"

	"github.com/hupe1980/factorgo/report"
	"github.com/hupe1980/factorgo/search"
)

// Factorizer executes digit-reconstruction factorization searches against a
// single target. The orbit and constraint tables are built once at
// construction and shared, read-only, by every run; a Factorizer is safe for
// concurrent use.
type Factorizer struct {
	engine *search.Engine
	opts   options
}

// NewFactorizer creates a Factorizer from a prebuilt search configuration.
// Most callers should prefer the fluent builder: New(n)...Build().
func NewFactorizer(n *big.Int, cfg search.Config, optFns ...Option) (*Factorizer, error) {
	opts := applyOptions(optFns)

	if cfg.Logger == nil {
		cfg.Logger = opts.logger.Logger
	}

	engine, err := search.New(n, cfg)
	if err != nil {
		return nil, translateError(err)
	}

	return &Factorizer{engine: engine, opts: opts}, nil
}

// Run executes one search. It returns a Result for every terminal search
// state - found, exhausted, or beam miss - and an error only for
// cancellation or a worker failure.
func (f *Factorizer) Run(ctx context.Context) (*search.Result, error) {
	if c := f.opts.controller; c != nil {
		if err := c.AcquireRun(ctx); err != nil {
			return nil, err
		}
		defer c.ReleaseRun()
	}

	start := time.Now()
	res, err := f.engine.Run(ctx)
	elapsed := time.Since(start)

	if err != nil {
		f.opts.metricsCollector.RecordRun(0, elapsed, err)
		f.opts.logger.LogRun(ctx, nil, err)
		return nil, translateError(err)
	}

	f.opts.metricsCollector.RecordRun(res.Status, elapsed, nil)
	for _, ld := range res.Diagnostics.Levels {
		f.opts.metricsCollector.RecordLevel(ld)
	}
	f.opts.logger.LogRun(ctx, res, nil)

	if f.opts.reportPath != "" {
		f.writeReport(ctx, res)
	}

	return res, nil
}

// Target returns a copy of the integer being factored.
func (f *Factorizer) Target() *big.Int { return f.engine.Target() }

// Digits returns the target's digit sequence, least-significant first.
func (f *Factorizer) Digits() []int { return f.engine.Digits() }

func (f *Factorizer) writeReport(ctx context.Context, res *search.Result) {
	start := time.Now()
	err := report.Write(f.opts.reportPath, res, func(o *report.Options) {
		o.Codec = f.opts.codec
		o.Compression = f.opts.reportCompression
	})
	f.opts.metricsCollector.RecordReport(time.Since(start), err)
	f.opts.logger.LogReport(ctx, f.opts.reportPath, err)
}
