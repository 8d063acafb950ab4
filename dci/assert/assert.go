package assert

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/LerianStudio/lib-dci/dci/internal/nilcheck"
	"github.com/LerianStudio/lib-dci/dci/log"
)

// ErrAssertionFailed is matched by every *AssertionError.
var ErrAssertionFailed = errors.New("assertion failed")

// maxValueLength caps each detail value so a large operand cannot flood logs.
const maxValueLength = 200

// AssertionError describes one failed check.
type AssertionError struct {
	Assertion string
	Message   string
	Component string
	Operation string
	Details   string
}

func (e *AssertionError) Error() string {
	switch {
	case e == nil:
		return ErrAssertionFailed.Error()
	case e.Details == "":
		return fmt.Sprintf("%v: %s", ErrAssertionFailed, e.Message)
	default:
		return fmt.Sprintf("%v: %s [%s]", ErrAssertionFailed, e.Message, e.Details)
	}
}

func (e *AssertionError) Unwrap() error {
	return ErrAssertionFailed
}

// Asserter checks preconditions for one component and operation, e.g.
// ("transfer", "new").
type Asserter struct {
	logger    log.Logger
	component string
	operation string
}

// New returns an Asserter. logger may be nil.
func New(logger log.Logger, component, operation string) *Asserter {
	return &Asserter{logger: logger, component: component, operation: operation}
}

// That fails unless ok. kv holds alternating keys and values for the report.
func (a *Asserter) That(ctx context.Context, ok bool, msg string, kv ...any) error {
	if ok {
		return nil
	}

	return a.fail(ctx, "That", msg, kv)
}

// NotNil fails when v is nil, including a typed nil pointer held in an
// interface, which is how a missing role usually arrives.
func (a *Asserter) NotNil(ctx context.Context, v any, msg string, kv ...any) error {
	if !nilcheck.Interface(v) {
		return nil
	}

	return a.fail(ctx, "NotNil", msg, kv)
}

func (a *Asserter) fail(ctx context.Context, assertion, msg string, kv []any) error {
	failure := &AssertionError{Assertion: assertion, Message: msg, Details: details(kv)}

	var logger log.Logger
	if a != nil {
		failure.Component, failure.Operation, logger = a.component, a.operation, a.logger
	}

	if ctx == nil {
		ctx = context.Background()
	}

	if logger != nil && logger.Enabled(log.LevelError) {
		logger.Log(ctx, log.LevelError, "assertion failed",
			log.String("assertion", assertion),
			log.String("component", failure.Component),
			log.String("operation", failure.Operation),
			log.String("message", msg),
			log.String("details", failure.Details),
		)
	}

	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		span.AddEvent("assertion.failed", trace.WithAttributes(
			attribute.String("assertion.type", assertion),
			attribute.String("assertion.component", failure.Component),
			attribute.String("assertion.operation", failure.Operation),
			attribute.String("assertion.message", msg),
		))
	}

	return failure
}

func details(kv []any) string {
	var b strings.Builder

	for i := 0; i < len(kv); i += 2 {
		if i > 0 {
			b.WriteString(", ")
		}

		value := "<missing>"
		if i+1 < len(kv) {
			value = truncate(fmt.Sprint(kv[i+1]))
		}

		fmt.Fprintf(&b, "%v=%s", kv[i], value)
	}

	return b.String()
}

func truncate(s string) string {
	if len(s) <= maxValueLength {
		return s
	}

	return fmt.Sprintf("%s... (%d more bytes)", s[:maxValueLength], len(s)-maxValueLength)
}
