package transfer

import (
	"context"
	"errors"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"

	"github.com/LerianStudio/lib-dci/dci"
	"github.com/LerianStudio/lib-dci/dci/assert"
	"github.com/LerianStudio/lib-dci/dci/log"
	"github.com/LerianStudio/lib-dci/dci/money"
)

// State is the lifecycle position of a single transfer.
//
//	Idle -> Withdrawing -> Depositing -> Completed
//
// A failure in Withdrawing or Depositing returns the transfer to Idle with
// an error.
type State string

const (
	StateIdle        State = "IDLE"
	StateWithdrawing State = "WITHDRAWING"
	StateDepositing  State = "DEPOSITING"
	StateCompleted   State = "COMPLETED"
)

// FailedState reports the state in which err was raised.
func FailedState(err error) (State, bool) {
	switch {
	case err == nil:
		return "", false
	case errors.Is(err, ErrCreditFailed):
		return StateDepositing, true
	case errors.Is(err, ErrDebitFailed):
		return StateWithdrawing, true
	default:
		return StateIdle, true
	}
}

// TransfersMetric counts finished transfers, labelled by transfer.outcome
// (completed or failed), transfer.currency and, for failures,
// transfer.failed_state.
const TransfersMetric = "dci.transfers"

type options struct {
	logger        log.Logger
	tracer        trace.Tracer
	meterProvider metric.MeterProvider
	concurrency   int
}

// Option configures a Context or Parallel.
type Option func(*options)

// WithLogger overrides the logger carried by the transfer context.
func WithLogger(logger log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithTracer overrides the tracer carried by the transfer context.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) { o.tracer = tracer }
}

// WithMeterProvider sets the provider hosting TransfersMetric. The global
// provider is used otherwise.
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(o *options) { o.meterProvider = provider }
}

// WithConcurrency bounds the number of transfers Parallel runs at once.
func WithConcurrency(n int) Option {
	return func(o *options) { o.concurrency = n }
}

// Context pairs a sender and a receiver for one transfer. It holds no state
// beyond its operands and cannot be reused once Transfer has been called.
type Context[S Sender[S, R], R Receiver[R]] struct {
	from      S
	to        R
	opts      options
	transfers metric.Int64Counter
	used      atomic.Bool
}

// New pairs from and to. Both must be non-nil.
func New[S Sender[S, R], R Receiver[R]](from S, to R, opts ...Option) (*Context[S, R], error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	asserter := assert.New(o.logger, "transfer", "new")

	if err := asserter.NotNil(context.Background(), from, "sender is required"); err != nil {
		return nil, err
	}

	if err := asserter.NotNil(context.Background(), to, "receiver is required"); err != nil {
		return nil, err
	}

	return &Context[S, R]{from: from, to: to, opts: o, transfers: newTransfersCounter(o.meterProvider)}, nil
}

//nolint:ireturn
func newTransfersCounter(provider metric.MeterProvider) metric.Int64Counter {
	if provider == nil {
		provider = otel.GetMeterProvider()
	}

	counter, err := provider.Meter(dci.InstrumentationName).Int64Counter(
		TransfersMetric,
		metric.WithDescription("Transfers executed by transfer.Context"),
		metric.WithUnit("{transfer}"),
	)
	if err != nil {
		return noop.Int64Counter{}
	}

	return counter
}

// Transfer moves amount from the sender to the receiver and returns both new
// states. A negative amount is rejected; zero is allowed and leaves both
// balances unchanged. The Context is consumed by the first call, successful or
// not.
func (c *Context[S, R]) Transfer(ctx context.Context, amount money.Money) (S, R, error) {
	var (
		noSender   S
		noReceiver R
	)

	if !c.used.CompareAndSwap(false, true) {
		return noSender, noReceiver, ErrContextConsumed
	}

	if ctx == nil {
		ctx = context.Background()
	}

	logger, tracer, correlationID := dci.NewTrackingFromContext(ctx)
	if c.opts.logger != nil {
		logger = c.opts.logger
	}

	if c.opts.tracer != nil {
		tracer = c.opts.tracer
	}

	ctx, span := tracer.Start(ctx, "transfer.execute", trace.WithAttributes(
		attribute.String("transfer.correlation_id", correlationID),
		attribute.String("transfer.from", c.from.PartyID()),
		attribute.String("transfer.to", c.to.PartyID()),
		attribute.String("transfer.amount", amount.Amount().String()),
		attribute.String("transfer.currency", amount.Currency().String()),
	))
	defer span.End()

	logger = logger.With(
		log.String("correlation_id", correlationID),
		log.String("from", c.from.PartyID()),
		log.String("to", c.to.PartyID()),
		log.Stringer("amount", amount),
	)

	if amount.IsNegative() {
		err := money.NewDomainError(money.ErrorInvalidAmount, "amount", "transfer amount must not be negative")
		c.recordFailure(ctx, span, logger, amount, err)

		return noSender, noReceiver, err
	}

	if err := ctx.Err(); err != nil {
		c.recordFailure(ctx, span, logger, amount, err)

		return noSender, noReceiver, err
	}

	from, to, err := c.from.Send(amount, c.to)
	if err != nil {
		c.recordFailure(ctx, span, logger, amount, err)

		return noSender, noReceiver, err
	}

	span.SetAttributes(attribute.String("transfer.state", string(StateCompleted)))
	c.transfers.Add(ctx, 1, metric.WithAttributes(
		attribute.String("transfer.outcome", "completed"),
		attribute.String("transfer.currency", amount.Currency().String()),
	))
	logger.Log(ctx, log.LevelDebug, "transfer completed")

	return from, to, nil
}

func (c *Context[S, R]) recordFailure(ctx context.Context, span trace.Span, logger log.Logger, amount money.Money, err error) {
	state, _ := FailedState(err)

	c.transfers.Add(ctx, 1, metric.WithAttributes(
		attribute.String("transfer.outcome", "failed"),
		attribute.String("transfer.currency", amount.Currency().String()),
		attribute.String("transfer.failed_state", string(state)),
	))

	span.SetAttributes(attribute.String("transfer.failed_state", string(state)))
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	logger.Log(ctx, log.LevelWarn, "transfer failed", log.String("failed_state", string(state)), log.Err(err))
}
