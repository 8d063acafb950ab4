package runtime

import (
	"context"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/LerianStudio/lib-dci/dci"
)

// PanicRecoveredMetric counts panics seen by HandlePanicValue, labelled by
// component and goroutine_name.
const PanicRecoveredMetric = "dci.panic.recovered"

// ErrorReporter forwards recovered panics to an external tracker. It must be
// safe for concurrent use.
type ErrorReporter interface {
	CaptureException(ctx context.Context, err error, tags map[string]string)
}

// Options controls what HandlePanicValue does besides logging.
type Options struct {
	Reporter ErrorReporter
	// Redact replaces panic values with a fixed message and drops stack
	// traces, for deployments where panic payloads may hold account data.
	Redact bool
	// MeterProvider hosts the PanicRecoveredMetric counter. Nil means the
	// global provider.
	MeterProvider metric.MeterProvider
}

type settings struct {
	reporter ErrorReporter
	redact   bool
	panics   metric.Int64Counter
}

var current atomic.Pointer[settings]

// Configure replaces the process-wide options. Call it at startup; passing
// the zero Options restores the defaults.
func Configure(opts Options) {
	current.Store(newSettings(opts))
}

func load() *settings {
	if s := current.Load(); s != nil {
		return s
	}

	current.CompareAndSwap(nil, newSettings(Options{}))

	return current.Load()
}

func newSettings(opts Options) *settings {
	provider := opts.MeterProvider
	if provider == nil {
		provider = otel.GetMeterProvider()
	}

	var counter metric.Int64Counter = noop.Int64Counter{}

	if c, err := provider.Meter(dci.InstrumentationName).Int64Counter(
		PanicRecoveredMetric,
		metric.WithDescription("Panics recovered by lib-dci goroutines"),
		metric.WithUnit("{panic}"),
	); err == nil {
		counter = c
	}

	return &settings{reporter: opts.Reporter, redact: opts.Redact, panics: counter}
}
