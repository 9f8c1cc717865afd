// Package resource bounds how many searches a process runs at once.
package resource

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Config holds resource limits.
type Config struct {
	// MaxConcurrentRuns is the maximum number of searches in flight.
	// If 0, defaults to 1.
	MaxConcurrentRuns int64

	// RunsPerSecond throttles run admission. If 0, unlimited.
	RunsPerSecond float64
}

// Controller gates search admission. A nil *Controller is a no-op.
type Controller struct {
	cfg Config

	runSem     *semaphore.Weighted
	runLimiter *rate.Limiter // nil if unlimited
	active     atomic.Int64
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.MaxConcurrentRuns <= 0 {
		cfg.MaxConcurrentRuns = 1
	}

	c := &Controller{
		cfg:    cfg,
		runSem: semaphore.NewWeighted(cfg.MaxConcurrentRuns),
	}

	if cfg.RunsPerSecond > 0 {
		c.runLimiter = rate.NewLimiter(rate.Limit(cfg.RunsPerSecond), 1)
	}

	return c
}

// AcquireRun blocks until a run slot is available (and the rate limiter
// admits the run) or ctx is canceled.
func (c *Controller) AcquireRun(ctx context.Context) error {
	if c == nil {
		return nil
	}

	if c.runLimiter != nil {
		if err := c.runLimiter.Wait(ctx); err != nil {
			return err
		}
	}

	if err := c.runSem.Acquire(ctx, 1); err != nil {
		return err
	}

	c.active.Add(1)
	return nil
}

// TryAcquireRun acquires a run slot without blocking.
func (c *Controller) TryAcquireRun() bool {
	if c == nil {
		return true
	}
	if c.runLimiter != nil && !c.runLimiter.Allow() {
		return false
	}
	if !c.runSem.TryAcquire(1) {
		return false
	}
	c.active.Add(1)
	return true
}

// ReleaseRun returns a run slot.
func (c *Controller) ReleaseRun() {
	if c == nil {
		return
	}
	c.active.Add(-1)
	c.runSem.Release(1)
}

// ActiveRuns returns the number of runs currently holding a slot.
func (c *Controller) ActiveRuns() int64 {
	if c == nil {
		return 0
	}
	return c.active.Load()
}
