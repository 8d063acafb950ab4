package runtime

import (
	"context"
	"fmt"
	"runtime/debug"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/LerianStudio/lib-dci/dci/log"
)

const redactedPanicMsg = "details redacted"

// PanicError carries a recovered panic value as text.
type PanicError struct {
	Value string
}

func (e *PanicError) Error() string {
	return "panic: " + e.Value
}

func newPanicError(recovered any, redact bool) *PanicError {
	if redact {
		return &PanicError{Value: redactedPanicMsg}
	}

	if err, ok := recovered.(error); ok {
		return &PanicError{Value: err.Error()}
	}

	return &PanicError{Value: fmt.Sprint(recovered)}
}

// HandlePanicValue reports a value obtained from recover(): it logs it, counts
// it, marks the active span as failed and forwards it to the configured
// ErrorReporter. A nil value is ignored; logger may be nil.
func HandlePanicValue(ctx context.Context, logger log.Logger, recovered any, component, goroutineName string) {
	if recovered == nil {
		return
	}

	if ctx == nil {
		ctx = context.Background()
	}

	s := load()
	panicErr := newPanicError(recovered, s.redact)

	var stack string
	if !s.redact {
		stack = string(debug.Stack())
	}

	s.panics.Add(ctx, 1, metric.WithAttributes(
		attribute.String("component", component),
		attribute.String("goroutine_name", goroutineName),
	))

	if logger != nil {
		fields := []log.Field{
			log.String("component", component),
			log.String("goroutine_name", goroutineName),
			log.Err(panicErr),
		}
		if stack != "" {
			fields = append(fields, log.String("stack", stack))
		}

		logger.Log(ctx, log.LevelError, "panic recovered", fields...)
	}

	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		span.AddEvent("panic.recovered", trace.WithAttributes(
			attribute.String("panic.component", component),
			attribute.String("panic.goroutine_name", goroutineName),
		))
		span.SetStatus(codes.Error, panicErr.Error())
	}

	if s.reporter != nil {
		tags := map[string]string{"component": component, "goroutine_name": goroutineName}
		if stack != "" {
			tags["stack_trace"] = stack
		}

		s.reporter.CaptureException(ctx, panicErr, tags)
	}
}
