// Package runner executes demo cases against a loaded dataset.
//
// A Runner selects cases from a demo.Registry by name, by lecture or all
// at once, runs them one after another and collects an Outcome per case
// into a Report. Every run carries a run ID (a UUID) that is attached to
// log lines as correlation_id and to spans as run.id. Each case gets its
// own span and, when metrics are configured, run and value counters.
//
// Failures do not stop the run unless fail-fast is set. A canceled
// context always stops it; cases that never started are not reported.
package runner
