package zap

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/LerianStudio/lib-dci/dci/log"
)

// Logger implements log.Logger on top of a *zap.Logger.
type Logger struct {
	base *zap.Logger
	// level is shared with children created by With. It is nil for loggers
	// built by Wrap, whose level belongs to the wrapped core.
	level *zap.AtomicLevel
}

var _ log.Logger = (*Logger)(nil)

// Wrap adapts an existing zap logger, typically one built on a
// zaptest/observer core.
func Wrap(base *zap.Logger) *Logger {
	return &Logger{base: base}
}

func (l *Logger) unwrap() *zap.Logger {
	if l == nil || l.base == nil {
		return zap.NewNop()
	}

	return l.base
}

// Log writes one entry. A valid span in ctx adds trace_id and span_id so the
// entry can be joined with the transfer trace.
func (l *Logger) Log(ctx context.Context, level log.Level, msg string, fields ...log.Field) {
	entry := l.unwrap().Check(toZapLevel(level), sanitize(msg))
	if entry == nil {
		return
	}

	zapFields := toZapFields(fields)

	if ctx != nil {
		if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
			zapFields = append(zapFields,
				zap.Stringer("trace_id", sc.TraceID()),
				zap.Stringer("span_id", sc.SpanID()),
			)
		}
	}

	entry.Write(zapFields...)
}

// With returns a child logger carrying fields on every entry.
//
//nolint:ireturn
func (l *Logger) With(fields ...log.Field) log.Logger {
	child := &Logger{base: l.unwrap().With(toZapFields(fields)...)}
	if l != nil {
		child.level = l.level
	}

	return child
}

// Enabled reports whether an entry at level would be written.
func (l *Logger) Enabled(level log.Level) bool {
	return l.unwrap().Core().Enabled(toZapLevel(level))
}

// SetLevel changes the minimum level of a logger built by New and of every
// child derived from it. It reports false for wrapped loggers.
func (l *Logger) SetLevel(level log.Level) bool {
	if l == nil || l.level == nil {
		return false
	}

	l.level.SetLevel(toZapLevel(level))

	return true
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.unwrap().Sync()
}

// Zap exposes the underlying logger for callers that need zap-only features.
func (l *Logger) Zap() *zap.Logger {
	return l.unwrap()
}

// toZapLevel relies on log.Level sharing zapcore's numbering for the levels
// both define.
func toZapLevel(level log.Level) zapcore.Level {
	switch {
	case level < log.LevelDebug:
		return zapcore.DebugLevel
	case level > log.LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.Level(level)
	}
}

func toZapFields(fields []log.Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))

	for _, field := range fields {
		switch value := field.Value.(type) {
		case error:
			if field.Key == log.ErrorKey {
				out = append(out, zap.Error(value))
			} else {
				out = append(out, zap.NamedError(field.Key, value))
			}
		case string:
			out = append(out, zap.String(field.Key, sanitize(value)))
		default:
			out = append(out, zap.Any(field.Key, value))
		}
	}

	return out
}
