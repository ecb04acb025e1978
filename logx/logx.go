// Package logx provides a structured logging implementation based on zerolog.
//
// Overview:
//   - Responsibility: Implement the core/log.Logger interface for settingsx consumers
//   - Key Types: Logger implementation, Option for configuration
//   - Concurrency Model: All loggers are safe for concurrent use
//   - Error Semantics: No errors returned; logging failures are silently handled
//
// Usage:
//
//	logger := logx.New(logx.WithLevel("debug"), logx.WithConsole(true))
//	logger.Info("settings resolved", log.Int("keys", 42))
package logx

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"go.fernwave.dev/settingsx/core/log"
)

// Options configures the logger behavior.
type Options struct {
	Level   string    // Minimum log level: debug, info, warn, error (default: info)
	Writer  io.Writer // Output writer (default: os.Stderr)
	Console bool      // Human-readable console output instead of JSON
	Service string    // Optional service name attached to every entry
}

// Option configures logger behavior.
type Option func(*Options)

// WithLevel sets the minimum log level.
func WithLevel(level string) Option {
	return func(o *Options) { o.Level = level }
}

// WithWriter sets the output writer.
func WithWriter(w io.Writer) Option {
	return func(o *Options) { o.Writer = w }
}

// WithConsole enables human-readable console output.
func WithConsole(enabled bool) Option {
	return func(o *Options) { o.Console = enabled }
}

// WithService attaches a service name to every log entry.
func WithService(name string) Option {
	return func(o *Options) { o.Service = name }
}

// Logger implements the core/log.Logger interface using zerolog.
type Logger struct {
	zl zerolog.Logger
}

// New creates a new Logger with the given options.
func New(opts ...Option) log.Logger {
	options := Options{
		Level:  "info",
		Writer: os.Stderr,
	}
	for _, opt := range opts {
		opt(&options)
	}

	if options.Writer == nil {
		options.Writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(options.Level); err == nil {
		level = parsed
	}

	writer := options.Writer
	if options.Console {
		writer = zerolog.ConsoleWriter{Out: options.Writer}
	}

	ctx := zerolog.New(writer).Level(level).With().Timestamp()
	if options.Service != "" {
		ctx = ctx.Str("service", options.Service)
	}

	return &Logger{zl: ctx.Logger()}
}

// FromZerolog wraps an existing zerolog.Logger in the core/log.Logger interface.
func FromZerolog(zl zerolog.Logger) log.Logger {
	return &Logger{zl: zl}
}

// With returns a new Logger with the given key-value pairs attached.
func (l *Logger) With(kv ...any) log.Logger {
	ctx := l.zl.With()
	for k, v := range pairs(kv) {
		ctx = ctx.Interface(k, v)
	}
	return &Logger{zl: ctx.Logger()}
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, kv ...any) {
	l.emit(l.zl.Debug(), msg, kv)
}

// Info logs an informational message.
func (l *Logger) Info(msg string, kv ...any) {
	l.emit(l.zl.Info(), msg, kv)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, kv ...any) {
	l.emit(l.zl.Warn(), msg, kv)
}

// Error logs an error message with the error attached.
func (l *Logger) Error(err error, msg string, kv ...any) {
	l.emit(l.zl.Error().Err(err), msg, kv)
}

func (l *Logger) emit(ev *zerolog.Event, msg string, kv []any) {
	for k, v := range pairs(kv) {
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}

// pairs normalizes key-value arguments into a map. Arguments may be the
// []any{key, value} pairs produced by the core/log helpers, or a flat
// alternating key/value sequence.
func pairs(kv []any) map[string]any {
	out := make(map[string]any, len(kv))
	i := 0
	for i < len(kv) {
		if pair, ok := kv[i].([]any); ok && len(pair) == 2 {
			if k, ok := pair[0].(string); ok {
				out[k] = pair[1]
			}
			i++
			continue
		}
		if i+1 < len(kv) {
			if k, ok := kv[i].(string); ok {
				out[k] = kv[i+1]
			}
			i += 2
			continue
		}
		i++
	}
	return out
}
