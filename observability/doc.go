// Package observability provides in-process OpenTelemetry tracing and metrics.
//
// Providers are never connected to an exporter. Spans go to whatever span
// processors the caller passes (none in production, a recorder in tests) and
// metrics are read on demand through a ManualReader.
//
// Tracing:
//
//	tp, err := observability.InitTracer(observability.DefaultTracerConfig("streams"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, observability.SpanDemoRun)
//	defer span.End()
//
// Metrics:
//
//	mp, reader, err := observability.InitMeter(observability.DefaultMeterConfig("streams"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("streams"))
//	metrics.RecordRun(ctx, "min", 3, "ok", duration)
//	totals, err := observability.Snapshot(ctx, reader)
package observability
