package factorgo

import (
	"sync/atomic"
	"time"

	"github.com/hupe1980/factorgo/search"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems.
type MetricsCollector interface {
	// RecordRun is called after each search run. status is only meaningful
	// when err is nil.
	RecordRun(status search.Status, duration time.Duration, err error)

	// RecordLevel is called once per explored level after a successful run.
	RecordLevel(ld search.LevelDiagnostics)

	// RecordReport is called after each report write attempt.
	RecordReport(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRun(search.Status, time.Duration, error) {}
func (NoopMetricsCollector) RecordLevel(search.LevelDiagnostics)          {}
func (NoopMetricsCollector) RecordReport(time.Duration, error)            {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	RunCount       atomic.Int64
	RunErrors      atomic.Int64
	RunTotalNanos  atomic.Int64
	FoundCount     atomic.Int64
	ExhaustedCount atomic.Int64
	BeamMissCount  atomic.Int64
	LevelCount     atomic.Int64
	Generated      atomic.Int64
	Pruned         atomic.Int64
	ReportCount    atomic.Int64
	ReportErrors   atomic.Int64
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(status search.Status, duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RunErrors.Add(1)
		return
	}
	switch status {
	case search.StatusFound:
		b.FoundCount.Add(1)
	case search.StatusExhausted:
		b.ExhaustedCount.Add(1)
	case search.StatusBeamMiss:
		b.BeamMissCount.Add(1)
	}
}

// RecordLevel implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLevel(ld search.LevelDiagnostics) {
	b.LevelCount.Add(1)
	b.Generated.Add(int64(ld.Generated))
	b.Pruned.Add(int64(ld.Pruned))
}

// RecordReport implements MetricsCollector.
func (b *BasicMetricsCollector) RecordReport(duration time.Duration, err error) {
	b.ReportCount.Add(1)
	if err != nil {
		b.ReportErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	stats := BasicMetricsStats{
		RunCount:       b.RunCount.Load(),
		RunErrors:      b.RunErrors.Load(),
		FoundCount:     b.FoundCount.Load(),
		ExhaustedCount: b.ExhaustedCount.Load(),
		BeamMissCount:  b.BeamMissCount.Load(),
		LevelCount:     b.LevelCount.Load(),
		Generated:      b.Generated.Load(),
		Pruned:         b.Pruned.Load(),
		ReportCount:    b.ReportCount.Load(),
		ReportErrors:   b.ReportErrors.Load(),
	}
	if stats.RunCount > 0 {
		stats.RunAvgNanos = b.RunTotalNanos.Load() / stats.RunCount
	}
	return stats
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	RunCount       int64
	RunErrors      int64
	RunAvgNanos    int64
	FoundCount     int64
	ExhaustedCount int64
	BeamMissCount  int64
	LevelCount     int64
	Generated      int64
	Pruned         int64
	ReportCount    int64
	ReportErrors   int64
}
