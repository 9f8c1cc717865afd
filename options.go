package factorgo

import (
	"log/slog"

	"github.com/hupe1980/factorgo/codec"
	"github.com/hupe1980/factorgo/report"
	"github.com/hupe1980/factorgo/resource"
)

type options struct {
	logger            *Logger
	metricsCollector  MetricsCollector
	codec             codec.Codec
	reportPath        string
	reportCompression report.Compression
	controller        *resource.Controller
}

// Option configures Factorizer construction. The fluent builder composes
// these internally; they are exported so callers with prebuilt search
// configs can skip the builder.
type Option func(*options)

// WithLogger configures structured logging for runs.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring runs.
// Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithCodec configures the codec used for report payloads.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithReport enables writing a diagnostics report after every run.
func WithReport(path string, compression report.Compression) Option {
	return func(o *options) {
		o.reportPath = path
		o.reportCompression = compression
	}
}

// WithResourceController bounds concurrent runs through the given
// controller. Pass nil to disable admission control.
func WithResourceController(c *resource.Controller) Option {
	return func(o *options) {
		o.controller = c
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector:  NoopMetricsCollector{},
		logger:            NoopLogger(),
		reportCompression: report.CompressionZSTD,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	return o
}
