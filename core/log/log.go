// Package log defines the minimal structured logging interface used across
// the settingsx packages.
//
// Overview:
//   - Responsibility: Define a stable logging interface for settingsx
//   - Key Types: Logger interface with structured key-value logging
//   - Concurrency Model: Logger implementations must be safe for concurrent use
//   - Error Semantics: Error method accepts error as first parameter for structured logging
//
// Usage:
//
//	logger.Info("source inserted", log.Str("resource", "acme.appsettings.json"), log.Int("index", 1))
package log

// Logger defines a structured logging interface compatible with slog concepts.
// Implementations must be safe for concurrent use.
type Logger interface {
	// With returns a new Logger with the given key-value pairs attached.
	With(kv ...any) Logger

	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, kv ...any)

	// Info logs an informational message with optional key-value pairs.
	Info(msg string, kv ...any)

	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, kv ...any)

	// Error logs an error message with the error and optional key-value pairs.
	Error(err error, msg string, kv ...any)
}

// Str creates a string key-value pair for structured logging.
func Str(k, v string) any {
	return []any{k, v}
}

// Int creates an integer key-value pair for structured logging.
func Int(k string, v int) any {
	return []any{k, v}
}

// Bool creates a boolean key-value pair for structured logging.
func Bool(k string, v bool) any {
	return []any{k, v}
}

// Noop returns a Logger that discards everything.
func Noop() Logger {
	return noopLogger{}
}

type noopLogger struct{}

func (noopLogger) With(kv ...any) Logger { return noopLogger{} }

func (noopLogger) Debug(msg string, kv ...any) {}

func (noopLogger) Info(msg string, kv ...any) {}

func (noopLogger) Warn(msg string, kv ...any) {}

func (noopLogger) Error(err error, msg string, kv ...any) {}
