// Package logger provides structured logging on top of zerolog.
//
// Logs are written to stderr by default so that stdout carries only program
// output. The console format is meant for people, json for machines.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "console"
//	  output: "stderr"
//
// # Usage
//
//	log := logger.Get("runner")
//	log.Info("demo finished", logger.Fields(logger.FieldCase, "min", logger.FieldStatus, "ok"))
//
// A correlation ID stored with WithCorrelationID is added to every entry of a
// logger obtained through WithContext.
package logger
