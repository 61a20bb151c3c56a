package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/kbukum/gostreams/demo"
	"github.com/kbukum/gostreams/errors"
	"github.com/kbukum/gostreams/fixtures"
	"github.com/kbukum/gostreams/logger"
	"github.com/kbukum/gostreams/observability"
	"github.com/kbukum/gostreams/validation"
)

const component = "runner"

// Runner executes demo cases sequentially.
type Runner struct {
	registry *demo.Registry
	dataset  *fixtures.Dataset
	service  string
	runID    string
	failFast bool
	metrics  *observability.Metrics
	observer func(Outcome)
	log      *logger.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithRunID sets the run ID instead of generating one. It must be a UUID.
func WithRunID(id string) Option {
	return func(r *Runner) { r.runID = id }
}

// WithFailFast stops the run after the first failed case.
func WithFailFast(enabled bool) Option {
	return func(r *Runner) { r.failFast = enabled }
}

// WithMetrics records run metrics on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(r *Runner) { r.metrics = m }
}

// WithObserver calls fn with every outcome as soon as it is known.
func WithObserver(fn func(Outcome)) Option {
	return func(r *Runner) { r.observer = fn }
}

// WithServiceName sets the service name reported on spans and metrics.
func WithServiceName(name string) Option {
	return func(r *Runner) { r.service = name }
}

// New creates a Runner over the cases of reg.
func New(reg *demo.Registry, ds *fixtures.Dataset, opts ...Option) (*Runner, error) {
	r := &Runner{
		registry: reg,
		dataset:  ds,
		service:  "streams",
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.runID == "" {
		r.runID = uuid.NewString()
	}

	v := validation.New().RequiredUUID("run_id", r.runID)
	v.Custom(reg != nil, "registry", "is required")
	v.Custom(ds != nil, "dataset", "is required")
	if err := v.Validate(); err != nil {
		return nil, err
	}

	r.log = logger.Get(component)
	return r, nil
}

// RunID returns the ID attached to everything this runner logs and traces.
func (r *Runner) RunID() string { return r.runID }

// Select resolves the cases to run. all wins over lecture, which wins over
// names. Unknown names fail with NOT_FOUND before anything runs.
func (r *Runner) Select(names []string, all bool, lecture int) ([]demo.Case, error) {
	switch {
	case all:
		return r.registry.List(), nil
	case lecture > 0:
		cases := r.registry.ByLecture(lecture)
		if len(cases) == 0 {
			return nil, errors.NotFound("lecture", fmt.Sprint(lecture))
		}
		return cases, nil
	case len(names) == 0:
		return nil, errors.InvalidInput("names", "name at least one demo, or use --all or --lecture")
	}

	cases := make([]demo.Case, 0, len(names))
	for _, name := range names {
		c, err := r.registry.Get(name)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	return cases, nil
}

// Run executes cases in order and returns the report together with
// Report.Err.
func (r *Runner) Run(ctx context.Context, cases []demo.Case) (*Report, error) {
	start := time.Now()
	ctx = logger.WithCorrelationID(ctx, r.runID)
	log := r.log.WithContext(ctx)

	report := &Report{RunID: r.runID, Outcomes: make([]Outcome, 0, len(cases))}
	log.Info("run started", logger.Fields(logger.FieldCount, len(cases)))

	for _, c := range cases {
		if err := ctx.Err(); err != nil {
			log.Warn("run interrupted", logger.ErrorFields("run", err))
			break
		}

		o := r.runCase(ctx, c)
		report.Outcomes = append(report.Outcomes, o)
		if r.observer != nil {
			r.observer(o)
		}
		if o.Status == StatusFailed && r.failFast {
			log.Warn("stopping after failure", logger.Fields(logger.FieldCase, c.Name))
			break
		}
		if o.Status == StatusCanceled {
			break
		}
	}

	report.Duration = time.Since(start)
	err := report.Err()
	if err == nil && ctx.Err() != nil {
		err = errors.Canceled("run", ctx.Err())
	}

	log.Info("run finished", logger.Fields(
		logger.FieldCount, len(report.Outcomes),
		"failed", len(report.Failed()),
		logger.FieldDuration, report.Duration.Milliseconds(),
	))
	return report, err
}

func (r *Runner) runCase(ctx context.Context, c demo.Case) Outcome {
	oc := observability.NewOperationContext(r.service, "demo."+c.Name, r.runID, r.metrics)
	ctx, span := oc.StartSpanForOperation(ctx, observability.SpanDemoRun,
		attribute.String(observability.AttrCase, c.Name),
		attribute.Int(observability.AttrLecture, c.Lecture),
	)

	res, err := r.execute(ctx, c)
	o := Outcome{Case: c, Status: StatusOK, Result: res, Duration: oc.Duration()}
	var appErr *errors.AppError
	if err != nil {
		appErr = errors.Wrap(err)
		o.Status, o.Result, o.Err, o.Error = StatusFailed, nil, appErr, appErr.Error()
		if appErr.Code == errors.ErrCodeCanceled {
			o.Status = StatusCanceled
		}
		span.SetStatus(codes.Error, appErr.Error())
	} else {
		span.SetAttributes(attribute.Int(observability.AttrValueCount, res.Len()))
	}
	oc.EndOperation(ctx, span, o.Status, o.Err)

	if r.metrics != nil {
		r.metrics.RecordRun(ctx, c.Name, c.Lecture, o.Status, o.Duration)
		if o.Result != nil {
			r.metrics.RecordValues(ctx, c.Name, o.Result.Len())
		}
		if o.Status == StatusFailed {
			r.metrics.RecordError(ctx, string(appErr.Code), component)
		}
	}

	log := r.log.WithContext(ctx).WithFields(logger.Fields(
		logger.FieldCase, c.Name,
		logger.FieldLecture, c.Lecture,
		logger.FieldStatus, o.Status,
		logger.FieldDuration, o.Duration.Milliseconds(),
	))
	switch o.Status {
	case StatusOK:
		log.Debug("case finished", logger.Fields(logger.FieldCount, res.Len()))
	case StatusCanceled:
		log.Warn("case canceled")
	default:
		log.WithError(o.Err).Error("case failed")
	}
	return o
}

// execute runs c, turning a panic or a nil result into an error.
func (r *Runner) execute(ctx context.Context, c demo.Case) (res *demo.Result, err error) {
	defer func() {
		if p := recover(); p != nil {
			res, err = nil, errors.Internal(fmt.Errorf("panic: %v", p)).WithDetail("case", c.Name)
		}
	}()

	res, err = c.Run(ctx, r.dataset)
	if err == nil && res == nil {
		err = errors.New(errors.ErrCodeInternal, "demo returned no result").WithDetail("case", c.Name)
	}
	return res, err
}
