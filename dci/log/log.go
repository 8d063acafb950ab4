package log

import (
	"context"
	"fmt"
)

// Logger is the sink every dci package logs through. dci/zap provides the
// production implementation.
type Logger interface {
	Log(ctx context.Context, level Level, msg string, fields ...Field)
	With(fields ...Field) Logger
	Enabled(level Level) bool
}

// Level orders entries by severity; a higher value is more severe.
type Level int8

const (
	LevelDebug Level = iota - 1
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{"debug", "info", "warn", "error"}

func (level Level) String() string {
	if i := int(level) - int(LevelDebug); i >= 0 && i < len(levelNames) {
		return levelNames[i]
	}

	return fmt.Sprintf("level(%d)", int8(level))
}

// Field is one key/value pair on an entry.
type Field struct {
	Key   string
	Value any
}

// String is a string field.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Stringer renders value eagerly, so Money and IDs are logged in their
// canonical text form rather than as structs.
func Stringer(key string, value fmt.Stringer) Field {
	return Field{Key: key, Value: value.String()}
}

// Err is the "error" field. Adapters give it special treatment.
func Err(err error) Field {
	return Field{Key: ErrorKey, Value: err}
}

// ErrorKey is the key used by Err.
const ErrorKey = "error"

// Nop discards everything. The zero value is ready to use; test loggers embed
// it and override Log.
type Nop struct{}

// Log does nothing.
func (Nop) Log(context.Context, Level, string, ...Field) {}

// With returns n unchanged.
//
//nolint:ireturn
func (n Nop) With(...Field) Logger { return n }

// Enabled is always false.
func (Nop) Enabled(Level) bool { return false }
