package bootstrap

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/kbukum/gostreams/errors"
	"github.com/kbukum/gostreams/logger"
	"github.com/kbukum/gostreams/observability"
)

// App wraps a one-shot task with config, logging and observability.
// The type parameter C is the config type.
type App[C Config] struct {
	Name    string
	Version string
	Cfg     C
	Logger  *logger.Logger
	// Metrics is set by RunTask when metrics are enabled, nil otherwise.
	Metrics *observability.Metrics

	opts            *appOptions
	gracefulTimeout time.Duration
	onStart         []Hook
	onStop          []Hook

	tracerProvider *sdktrace.TracerProvider
	meterProvider  *sdkmetric.MeterProvider
	metricReader   *sdkmetric.ManualReader
}

// NewApp creates a new application from a typed config.
// It applies defaults, validates the config and initializes the logger.
func NewApp[C Config](cfg C, opts ...Option) (*App[C], error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Config(err)
	}

	base := cfg.GetServiceConfig()
	o := resolveOptions(opts)

	app := &App[C]{
		Name:            base.Name,
		Version:         base.Version,
		Cfg:             cfg,
		opts:            o,
		gracefulTimeout: 5 * time.Second,
	}
	if o.gracefulTimeout != nil {
		app.gracefulTimeout = *o.gracefulTimeout
	}

	if o.logger != nil {
		app.Logger = o.logger
	} else {
		logger.Init(&base.Logging)
		app.Logger = logger.GetGlobalLogger()
	}
	logger.RegisterDefaults("fixtures", "runner", "cli")

	return app, nil
}

// RunTask executes task with the full lifecycle: providers, OnStart hooks,
// the task itself under signal-based cancellation, OnStop hooks and
// provider shutdown. The task error wins over shutdown errors.
func (a *App[C]) RunTask(ctx context.Context, task func(ctx context.Context) error) error {
	if err := a.startup(ctx); err != nil {
		return err
	}

	taskCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if a.opts.signals {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigCh)

		go func() {
			select {
			case sig := <-sigCh:
				a.Logger.Info("received signal, canceling task", map[string]interface{}{
					"signal": sig.String(),
				})
				cancel()
			case <-taskCtx.Done():
			}
		}()
	}

	taskErr := task(taskCtx)

	if stopErr := a.stop(); stopErr != nil && taskErr == nil {
		return stopErr
	}
	return taskErr
}

// startup installs the tracer and meter providers and runs OnStart hooks.
func (a *App[C]) startup(ctx context.Context) error {
	base := a.Cfg.GetServiceConfig()

	if a.opts.tracing {
		tc := observability.TracerConfig{
			ServiceName:    a.Name,
			ServiceVersion: a.Version,
			Environment:    base.Environment,
			SampleRate:     a.opts.sampleRate,
		}
		tp, err := observability.InitTracer(tc, a.opts.processors...)
		if err != nil {
			return errors.Internal(err)
		}
		a.tracerProvider = tp
	}

	if a.opts.metrics {
		mc := observability.MeterConfig{
			ServiceName:    a.Name,
			ServiceVersion: a.Version,
			Environment:    base.Environment,
		}
		mp, reader, err := observability.InitMeter(mc)
		if err != nil {
			return errors.Internal(err)
		}
		metrics, err := observability.NewMetrics(mp.Meter(a.Name))
		if err != nil {
			return errors.Internal(err)
		}
		a.meterProvider, a.metricReader, a.Metrics = mp, reader, metrics
	}

	a.Logger.Debug("application started", map[string]interface{}{
		"name":    a.Name,
		"version": a.Version,
		"tracing": a.opts.tracing,
		"metrics": a.opts.metrics,
	})

	if err := runHooks(ctx, a.onStart); err != nil {
		return errors.Internal(err).WithDetail("phase", "start")
	}
	return nil
}

// MetricTotals returns the totals recorded so far, or nil when metrics are
// disabled.
func (a *App[C]) MetricTotals(ctx context.Context) (map[string]int64, error) {
	if a.metricReader == nil {
		return nil, nil
	}
	return observability.Snapshot(ctx, a.metricReader)
}

// stop runs OnStop hooks and shuts the providers down within the graceful
// timeout.
func (a *App[C]) stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.gracefulTimeout)
	defer cancel()

	var shutdownErr error
	if err := runHooks(ctx, a.onStop); err != nil {
		a.Logger.Error("OnStop hook error", logger.ErrorFields("stop", err))
		shutdownErr = err
	}

	if totals, err := a.MetricTotals(ctx); err == nil && totals != nil {
		fields := make(map[string]interface{}, len(totals))
		for name, n := range totals {
			fields[name] = n
		}
		a.Logger.Debug("metrics", fields)
	}

	if a.meterProvider != nil {
		if err := a.meterProvider.Shutdown(ctx); err != nil && shutdownErr == nil {
			shutdownErr = err
		}
	}
	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil && shutdownErr == nil {
			shutdownErr = err
		}
	}
	return shutdownErr
}
