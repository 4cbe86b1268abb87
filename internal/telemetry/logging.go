// Logging setup and configuration
//
// Structured logging framework:
// - Log level management
// - Output formatting
// - Field standardization
// - Contextual logging
package telemetry

import (
	"context"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// LogLevel represents the logging level
type LogLevel int

const (
	// Log levels
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger defines the interface for logging
type Logger interface {
	// Log methods
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})

	// With methods
	With(args ...interface{}) Logger
	WithField(key string, value interface{}) Logger

	// Context methods
	WithContext(ctx context.Context) Logger
}

// zlogLogger is a Logger implementation backed by zerolog.
type zlogLogger struct {
	log zerolog.Logger
}

// NewLogger creates a new logger. format selects "json" (the zerolog
// default) or "console" (zerolog's human-readable ConsoleWriter); output
// selects "stdout" or "stderr".
func NewLogger(level string, format string, output string) Logger {
	var writer = os.Stdout
	if strings.EqualFold(output, "stderr") {
		writer = os.Stderr
	}

	var zl zerolog.Logger
	if strings.EqualFold(format, "console") {
		zl = zerolog.New(zerolog.ConsoleWriter{Out: writer}).With().Timestamp().Logger()
	} else {
		zl = zerolog.New(writer).With().Timestamp().Logger()
	}
	zl = zl.Level(parseLevel(level))

	return &zlogLogger{log: zl}
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *zlogLogger) Debug(msg string, args ...interface{}) { l.event(l.log.Debug(), args...).Msg(msg) }
func (l *zlogLogger) Info(msg string, args ...interface{})  { l.event(l.log.Info(), args...).Msg(msg) }
func (l *zlogLogger) Warn(msg string, args ...interface{})  { l.event(l.log.Warn(), args...).Msg(msg) }
func (l *zlogLogger) Error(msg string, args ...interface{}) { l.event(l.log.Error(), args...).Msg(msg) }

func (l *zlogLogger) event(e *zerolog.Event, args ...interface{}) *zerolog.Event {
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		e = fieldInterface(e, key, args[i+1])
	}
	return e
}

func fieldInterface(e *zerolog.Event, key string, value interface{}) *zerolog.Event {
	switch v := value.(type) {
	case error:
		return e.AnErr(key, v)
	case string:
		return e.Str(key, v)
	default:
		return e.Interface(key, v)
	}
}

// With returns a Logger carrying the given key/value pairs on every
// subsequent call.
func (l *zlogLogger) With(args ...interface{}) Logger {
	ctx := l.log.With()
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		ctx = fieldContext(ctx, key, args[i+1])
	}
	return &zlogLogger{log: ctx.Logger()}
}

func fieldContext(ctx zerolog.Context, key string, value interface{}) zerolog.Context {
	switch v := value.(type) {
	case error:
		return ctx.AnErr(key, v)
	case string:
		return ctx.Str(key, v)
	default:
		return ctx.Interface(key, v)
	}
}

// WithField adds a single field to the logger.
func (l *zlogLogger) WithField(key string, value interface{}) Logger {
	return l.With(key, value)
}

// WithContext attaches request-scoped values (if any zerolog.Logger has
// been stashed on ctx) to this logger.
func (l *zlogLogger) WithContext(ctx context.Context) Logger {
	if lg := zerolog.Ctx(ctx); lg != nil && lg.GetLevel() != zerolog.Disabled {
		return &zlogLogger{log: *lg}
	}
	return l
}
