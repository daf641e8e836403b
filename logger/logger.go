// Package logger provides the structured logging interface used by the
// generators, with a zerolog-backed implementation and a silent no-op one.
package logger

import (
	"github.com/rs/zerolog"
)

// Field is a key-value pair attached to a log entry.
type Field struct {
	Key   string
	Value any
}

// Logger writes structured entries at debug, info, warn and error level.
// Derived loggers created with With carry their fields into every entry.
type Logger interface {
	// Debug logs a message at debug level.
	//
	// Parameters:
	//   - msg: The log message
	//   - fields: Optional key-value pairs to include in the entry
	Debug(msg string, fields ...Field)

	// Info logs a message at info level.
	//
	// Parameters:
	//   - msg: The log message
	//   - fields: Optional key-value pairs to include in the entry
	Info(msg string, fields ...Field)

	// Warn logs a message at warn level.
	//
	// Parameters:
	//   - msg: The log message
	//   - fields: Optional key-value pairs to include in the entry
	Warn(msg string, fields ...Field)

	// Error logs a message at error level.
	//
	// Parameters:
	//   - msg: The log message
	//   - fields: Optional key-value pairs to include in the entry
	Error(msg string, fields ...Field)

	// With returns a Logger that adds fields to every entry. The receiver is
	// left unchanged.
	//
	// Parameters:
	//   - fields: Key-value pairs to attach to the derived logger
	//
	// Returns:
	//   - The derived Logger
	With(fields ...Field) Logger
}

type zerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger wraps l, tagging every entry with the component name and a
// timestamp and dropping entries below level.
//
// Parameters:
//   - l: The zerolog.Logger to write through
//   - component: Name added as the "component" field of every entry
//   - level: Minimum level to log (e.g. zerolog.InfoLevel)
//
// Returns:
//   - A Logger backed by zerolog
func NewZerologLogger(l zerolog.Logger, component string, level zerolog.Level) Logger {
	return &zerologLogger{
		logger: l.With().Str("component", component).Timestamp().Logger().Level(level),
	}
}

// NewNopLogger returns a Logger that discards everything.
func NewNopLogger() Logger {
	return &zerologLogger{logger: zerolog.Nop()}
}

// Debug implements Logger.
func (z *zerologLogger) Debug(msg string, fields ...Field) {
	z.logger.Debug().Fields(toMap(fields)).Msg(msg)
}

// Info implements Logger.
func (z *zerologLogger) Info(msg string, fields ...Field) {
	z.logger.Info().Fields(toMap(fields)).Msg(msg)
}

// Warn implements Logger.
func (z *zerologLogger) Warn(msg string, fields ...Field) {
	z.logger.Warn().Fields(toMap(fields)).Msg(msg)
}

// Error implements Logger.
func (z *zerologLogger) Error(msg string, fields ...Field) {
	z.logger.Error().Fields(toMap(fields)).Msg(msg)
}

// With implements Logger.
func (z *zerologLogger) With(fields ...Field) Logger {
	return &zerologLogger{
		logger: z.logger.With().Fields(toMap(fields)).Logger(),
	}
}

func toMap(fields []Field) map[string]any {
	if len(fields) == 0 {
		return nil
	}

	m := make(map[string]any, len(fields))
	for _, f := range fields {
		m[f.Key] = f.Value
	}

	return m
}
