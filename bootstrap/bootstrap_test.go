package bootstrap

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/kbukum/gostreams/config"
	"github.com/kbukum/gostreams/errors"
	"github.com/kbukum/gostreams/logger"
	"github.com/kbukum/gostreams/observability"
)

// testConfig is a minimal config that satisfies the Config interface.
type testConfig struct {
	config.ServiceConfig
}

func newTestConfig(name, version string) *testConfig {
	return &testConfig{
		ServiceConfig: config.ServiceConfig{
			Name:        name,
			Version:     version,
			Environment: "development",
		},
	}
}

func quietLogger() *logger.Logger {
	return logger.NewWithWriter(&logger.Config{Level: "disabled"}, "test", &bytes.Buffer{})
}

func restoreProviders(t *testing.T) {
	t.Helper()
	tp, mp := otel.GetTracerProvider(), otel.GetMeterProvider()
	t.Cleanup(func() {
		otel.SetTracerProvider(tp)
		otel.SetMeterProvider(mp)
	})
}

func TestNewApp(t *testing.T) {
	app, err := NewApp(newTestConfig("test-svc", "1.0.0"), WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	if app.Name != "test-svc" || app.Version != "1.0.0" {
		t.Errorf("name/version = %q/%q", app.Name, app.Version)
	}
	if app.Logger == nil {
		t.Error("expected non-nil logger")
	}
	if app.Cfg.Name != "test-svc" {
		t.Errorf("expected cfg.Name 'test-svc', got %q", app.Cfg.Name)
	}
	if app.Metrics != nil {
		t.Error("metrics should be nil before RunTask")
	}
}

func TestNewApp_ValidationError(t *testing.T) {
	_, err := NewApp(newTestConfig("", "1.0.0"))
	appErr, ok := errors.AsAppError(err)
	if !ok || appErr.Code != errors.ErrCodeConfig {
		t.Fatalf("err = %v, want CONFIG_ERROR", err)
	}
}

func TestNewApp_AppliesDefaults(t *testing.T) {
	cfg := &testConfig{ServiceConfig: config.ServiceConfig{Name: "svc"}}
	app, err := NewApp(cfg, WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	if app.Cfg.Environment != "development" {
		t.Errorf("expected default environment, got %q", app.Cfg.Environment)
	}
	if app.Cfg.Logging.ServiceName != "svc" {
		t.Errorf("logging service name = %q", app.Cfg.Logging.ServiceName)
	}
}

func TestRunTask_HooksInOrder(t *testing.T) {
	app, err := NewApp(newTestConfig("svc", "1"), WithLogger(quietLogger()), WithSignalHandling(false))
	if err != nil {
		t.Fatal(err)
	}

	var order []string
	app.OnStart(func(context.Context) error { order = append(order, "start"); return nil })
	app.OnStop(func(context.Context) error { order = append(order, "stop"); return nil })

	err = app.RunTask(context.Background(), func(context.Context) error {
		order = append(order, "task")
		return nil
	})
	if err != nil {
		t.Fatalf("RunTask: %v", err)
	}
	if fmt.Sprint(order) != "[start task stop]" {
		t.Errorf("order = %v", order)
	}
}

func TestRunTask_StartHookFails(t *testing.T) {
	app, err := NewApp(newTestConfig("svc", "1"), WithLogger(quietLogger()), WithSignalHandling(false))
	if err != nil {
		t.Fatal(err)
	}
	app.OnStart(func(context.Context) error { return fmt.Errorf("no") })

	ran := false
	err = app.RunTask(context.Background(), func(context.Context) error { ran = true; return nil })
	if err == nil || ran {
		t.Errorf("err = %v, ran = %v; want error and no task", err, ran)
	}
}

func TestRunTask_TaskErrorWins(t *testing.T) {
	app, err := NewApp(newTestConfig("svc", "1"), WithLogger(quietLogger()), WithSignalHandling(false))
	if err != nil {
		t.Fatal(err)
	}
	app.OnStop(func(context.Context) error { return fmt.Errorf("stop failed") })

	taskErr := errors.NotFound("demo", "x")
	if got := app.RunTask(context.Background(), func(context.Context) error { return taskErr }); got != taskErr {
		t.Errorf("RunTask = %v, want task error", got)
	}
}

func TestRunTask_StopErrorReturned(t *testing.T) {
	app, err := NewApp(newTestConfig("svc", "1"), WithLogger(quietLogger()), WithSignalHandling(false))
	if err != nil {
		t.Fatal(err)
	}
	app.OnStop(func(context.Context) error { return fmt.Errorf("stop failed") })

	if err := app.RunTask(context.Background(), func(context.Context) error { return nil }); err == nil {
		t.Error("expected the stop error")
	}
}

func TestRunTask_ContextCanceled(t *testing.T) {
	app, err := NewApp(newTestConfig("svc", "1"), WithLogger(quietLogger()))
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = app.RunTask(ctx, func(ctx context.Context) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
			return nil
		}
	})
	if err != context.Canceled {
		t.Errorf("RunTask = %v, want context.Canceled", err)
	}
}

func TestRunTask_Observability(t *testing.T) {
	restoreProviders(t)
	rec := tracetest.NewSpanRecorder()

	app, err := NewApp(newTestConfig("svc", "1"),
		WithLogger(quietLogger()),
		WithSignalHandling(false),
		WithTracing(true, 1.0),
		WithSpanProcessor(rec),
		WithMetrics(true),
	)
	if err != nil {
		t.Fatal(err)
	}

	var totals map[string]int64
	app.OnStop(func(ctx context.Context) error {
		var err error
		totals, err = app.MetricTotals(ctx)
		return err
	})

	err = app.RunTask(context.Background(), func(ctx context.Context) error {
		if app.Metrics == nil {
			return fmt.Errorf("metrics not installed")
		}
		_, span := observability.StartSpan(ctx, "task")
		span.End()
		app.Metrics.RecordValues(ctx, "min", 4)
		return nil
	})
	if err != nil {
		t.Fatalf("RunTask: %v", err)
	}
	if len(rec.Ended()) != 1 {
		t.Errorf("recorded %d spans, want 1", len(rec.Ended()))
	}
	if totals[observability.MetricValuesTotal] != 4 {
		t.Errorf("totals = %v", totals)
	}
}

func TestMetricTotals_Disabled(t *testing.T) {
	app, err := NewApp(newTestConfig("svc", "1"), WithLogger(quietLogger()))
	if err != nil {
		t.Fatal(err)
	}
	totals, err := app.MetricTotals(context.Background())
	if err != nil || totals != nil {
		t.Errorf("MetricTotals = %v, %v; want nil, nil", totals, err)
	}
}
