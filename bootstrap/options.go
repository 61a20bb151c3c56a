package bootstrap

import (
	"time"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/kbukum/gostreams/logger"
)

// Option configures the App during creation.
// Options are non-generic so they can be used with any config type.
type Option func(*appOptions)

type appOptions struct {
	logger          *logger.Logger
	gracefulTimeout *time.Duration
	tracing         bool
	sampleRate      float64
	metrics         bool
	processors      []sdktrace.SpanProcessor
	signals         bool
}

func resolveOptions(opts []Option) *appOptions {
	o := &appOptions{sampleRate: 1.0, signals: true}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets a custom logger for the application.
// If not set, the logger is initialized from the config's Logging field.
func WithLogger(l *logger.Logger) Option {
	return func(o *appOptions) {
		o.logger = l
	}
}

// WithGracefulTimeout sets the maximum duration for the OnStop phase.
func WithGracefulTimeout(d time.Duration) Option {
	return func(o *appOptions) {
		o.gracefulTimeout = &d
	}
}

// WithTracing installs a tracer provider sampling at rate.
func WithTracing(enabled bool, rate float64) Option {
	return func(o *appOptions) {
		o.tracing = enabled
		o.sampleRate = rate
	}
}

// WithSpanProcessor adds a span processor to the tracer provider. It has
// no effect unless tracing is enabled.
func WithSpanProcessor(p sdktrace.SpanProcessor) Option {
	return func(o *appOptions) {
		o.processors = append(o.processors, p)
	}
}

// WithMetrics installs a meter provider and exposes the instruments as
// App.Metrics.
func WithMetrics(enabled bool) Option {
	return func(o *appOptions) {
		o.metrics = enabled
	}
}

// WithSignalHandling controls whether RunTask cancels on SIGINT/SIGTERM.
func WithSignalHandling(enabled bool) Option {
	return func(o *appOptions) {
		o.signals = enabled
	}
}
