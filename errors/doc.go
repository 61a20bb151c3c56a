// Package errors provides the coded application error used across the
// streams toolkit. Every AppError carries a machine-readable code, a
// human-readable message, optional details and an optional cause, and maps
// to a process exit status for the CLI.
package errors
