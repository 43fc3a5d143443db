// Package logger builds the application's slog logger. Production output is
// JSON, everything else is human-readable text, and every record carries the
// deployment environment.
package logger
