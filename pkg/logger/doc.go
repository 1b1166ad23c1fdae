// Package logger builds the structured slog.Logger used at formkit's
// edges. Library packages stay silent; only surfaces that talk to hosts
// (the HTTP glue, the examples) log, and they all go through this factory
// so field names and formats stay consistent.
//
// New applies functional options over production-safe defaults (JSON at
// info level). NewFromEnv reads LOG_LEVEL and LOG_FORMAT so deployments
// configure logging without code changes.
package logger
