package errgroup

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/LerianStudio/lib-dci/dci/log"
	"github.com/LerianStudio/lib-dci/dci/runtime"
)

// ErrPanicRecovered is wrapped by the error Wait returns when a goroutine
// panicked.
var ErrPanicRecovered = errors.New("goroutine panicked")

const defaultName = "errgroup"

// Option configures a Group built by WithContext.
type Option func(*Group)

// WithLimit caps the goroutines running at once. n <= 0 leaves it uncapped.
func WithLimit(n int) Option {
	return func(g *Group) {
		if n > 0 {
			g.slots = make(chan struct{}, n)
		}
	}
}

// WithLogger sets where recovered panics are logged.
func WithLogger(logger log.Logger) Option {
	return func(g *Group) { g.logger = logger }
}

// WithName labels recovered panics as goroutine_name in logs, spans and the
// panic counter.
func WithName(name string) Option {
	return func(g *Group) { g.name = name }
}

// Group runs goroutines that fail together. The zero value is usable, with
// no limit and no cancellation.
type Group struct {
	ctx    context.Context
	cancel context.CancelCauseFunc
	slots  chan struct{}
	logger log.Logger
	name   string

	wg   sync.WaitGroup
	once sync.Once
	err  error
}

// WithContext returns a Group and a context derived from ctx. The context is
// cancelled, with the failure as its cause, when the first goroutine fails,
// and in any case when Wait returns.
func WithContext(ctx context.Context, opts ...Option) (*Group, context.Context) {
	ctx, cancel := context.WithCancelCause(ctx)

	g := &Group{ctx: ctx, cancel: cancel, name: defaultName}
	for _, opt := range opts {
		opt(g)
	}

	return g, ctx
}

// Go runs fn in its own goroutine, first waiting for a free slot when a limit
// is set.
func (g *Group) Go(fn func() error) {
	if g.slots != nil {
		g.slots <- struct{}{}
	}

	g.wg.Add(1)

	go func() {
		defer g.wg.Done()

		if g.slots != nil {
			defer func() { <-g.slots }()
		}

		defer g.recoverPanic()

		if err := fn(); err != nil {
			g.fail(err)
		}
	}()
}

func (g *Group) recoverPanic() {
	recovered := recover()
	if recovered == nil {
		return
	}

	ctx, name := g.ctx, g.name
	if ctx == nil {
		ctx = context.Background()
	}

	if name == "" {
		name = defaultName
	}

	runtime.HandlePanicValue(ctx, g.logger, recovered, "errgroup", name)
	g.fail(fmt.Errorf("%w: %v", ErrPanicRecovered, recovered))
}

func (g *Group) fail(err error) {
	g.once.Do(func() {
		g.err = err
		if g.cancel != nil {
			g.cancel(err)
		}
	})
}

// Wait blocks until every goroutine has returned and reports the first
// failure.
func (g *Group) Wait() error {
	g.wg.Wait()

	if g.cancel != nil {
		g.cancel(nil)
	}

	return g.err
}
