// Package bootstrap runs a one-shot task with the program's lifecycle
// around it.
//
// NewApp applies defaults to a typed configuration, validates it and
// initializes the logger. RunTask then starts the in-process tracer and
// meter (when enabled), runs the OnStart hooks, executes the task with a
// context that is canceled on SIGINT or SIGTERM, and finally runs the
// OnStop hooks and flushes the providers.
//
//	app, err := bootstrap.NewApp(cfg, bootstrap.WithTracing(true, 1.0), bootstrap.WithMetrics(true))
//	if err != nil {
//	    return err
//	}
//	return app.RunTask(ctx, func(ctx context.Context) error {
//	    return work(ctx, app.Metrics)
//	})
package bootstrap
