package dci

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/LerianStudio/lib-dci/dci/internal/nilcheck"
	"github.com/LerianStudio/lib-dci/dci/log"
)

// InstrumentationName names the tracer used when none is in the context.
const InstrumentationName = "github.com/LerianStudio/lib-dci"

type customContextKey string

// CustomContextKey is the context key used to store CustomContextKeyValue.
var CustomContextKey = customContextKey("dci_context")

// CustomContextKeyValue holds the facilities attached to a context.
type CustomContextKeyValue struct {
	CorrelationID string
	Tracer        trace.Tracer
	Logger        log.Logger
}

// withValues copies the current bundle, applies update and stores the copy,
// so parent contexts never observe changes made for a child.
func withValues(ctx context.Context, update func(*CustomContextKeyValue)) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	next := CustomContextKeyValue{}
	if current, ok := ctx.Value(CustomContextKey).(*CustomContextKeyValue); ok && current != nil {
		next = *current
	}

	update(&next)

	return context.WithValue(ctx, CustomContextKey, &next)
}

// ContextWithLogger returns a context carrying logger.
func ContextWithLogger(ctx context.Context, logger log.Logger) context.Context {
	return withValues(ctx, func(values *CustomContextKeyValue) { values.Logger = logger })
}

// ContextWithTracer returns a context carrying tracer.
func ContextWithTracer(ctx context.Context, tracer trace.Tracer) context.Context {
	return withValues(ctx, func(values *CustomContextKeyValue) { values.Tracer = tracer })
}

// ContextWithCorrelationID returns a context carrying a correlation id.
func ContextWithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return withValues(ctx, func(values *CustomContextKeyValue) { values.CorrelationID = correlationID })
}

// NewLoggerFromContext returns the context logger or a no-op logger.
//
//nolint:ireturn
func NewLoggerFromContext(ctx context.Context) log.Logger {
	logger, _, _ := NewTrackingFromContext(ctx)

	return logger
}

// NewTrackingFromContext returns the logger, tracer and correlation id carried
// by ctx, substituting defaults for anything missing.
//
//nolint:ireturn
func NewTrackingFromContext(ctx context.Context) (log.Logger, trace.Tracer, string) {
	var values CustomContextKeyValue

	if ctx != nil {
		if current, ok := ctx.Value(CustomContextKey).(*CustomContextKeyValue); ok && current != nil {
			values = *current
		}
	}

	return resolveLogger(values.Logger), resolveTracer(values.Tracer), resolveCorrelationID(values.CorrelationID)
}

//nolint:ireturn
func resolveLogger(logger log.Logger) log.Logger {
	if nilcheck.Interface(logger) {
		return log.Nop{}
	}

	return logger
}

//nolint:ireturn
func resolveTracer(tracer trace.Tracer) trace.Tracer {
	if nilcheck.Interface(tracer) {
		return otel.Tracer(InstrumentationName)
	}

	return tracer
}

func resolveCorrelationID(correlationID string) string {
	if strings.TrimSpace(correlationID) == "" {
		return uuid.NewString()
	}

	return correlationID
}
