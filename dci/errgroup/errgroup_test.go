//go:build unit

package errgroup_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LerianStudio/lib-dci/dci/errgroup"
	"github.com/LerianStudio/lib-dci/dci/log"
)

type panicLogger struct {
	log.Nop
	mu    sync.Mutex
	names []string
}

func (l *panicLogger) Log(_ context.Context, _ log.Level, _ string, fields ...log.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, field := range fields {
		if field.Key == "goroutine_name" {
			l.names = append(l.names, field.Value.(string))
		}
	}
}

func TestWithContext_AllSucceed(t *testing.T) {
	t.Parallel()

	group, _ := errgroup.WithContext(context.Background())

	var ran atomic.Int32
	for range 3 {
		group.Go(func() error {
			ran.Add(1)
			return nil
		})
	}

	require.NoError(t, group.Wait())
	assert.Equal(t, int32(3), ran.Load())
}

func TestWithContext_ErrorCancelsContext(t *testing.T) {
	t.Parallel()

	expectedErr := errors.New("credit failed")
	group, groupCtx := errgroup.WithContext(context.Background())

	group.Go(func() error { return expectedErr })
	group.Go(func() error {
		<-groupCtx.Done()
		return nil
	})

	err := group.Wait()
	require.Error(t, err)
	assert.Equal(t, expectedErr, err)
	assert.ErrorIs(t, groupCtx.Err(), context.Canceled)
	assert.Equal(t, expectedErr, context.Cause(groupCtx))
}

func TestGo_PanicBecomesError(t *testing.T) {
	t.Parallel()

	group, _ := errgroup.WithContext(context.Background())

	group.Go(func() error { panic("boom") })

	err := group.Wait()
	require.Error(t, err)
	assert.ErrorIs(t, err, errgroup.ErrPanicRecovered)
	assert.Contains(t, err.Error(), "boom")
}

func TestWaitCancelsContext(t *testing.T) {
	t.Parallel()

	group, groupCtx := errgroup.WithContext(context.Background())

	group.Go(func() error { return nil })

	require.NoError(t, group.Wait())
	assert.ErrorIs(t, context.Cause(groupCtx), context.Canceled)
}

func TestGo_PanicIsLoggedWithName(t *testing.T) {
	t.Parallel()

	logger := &panicLogger{}
	group, _ := errgroup.WithContext(context.Background(), errgroup.WithLogger(logger), errgroup.WithName("transfer.Parallel"))

	group.Go(func() error { panic("boom") })

	require.Error(t, group.Wait())
	assert.Equal(t, []string{"transfer.Parallel"}, logger.names)
}

func TestWithLimit(t *testing.T) {
	t.Parallel()

	group, _ := errgroup.WithContext(context.Background(), errgroup.WithLimit(2))

	var running, peak atomic.Int32

	for range 10 {
		group.Go(func() error {
			current := running.Add(1)
			for {
				seen := peak.Load()
				if current <= seen || peak.CompareAndSwap(seen, current) {
					break
				}
			}

			running.Add(-1)

			return nil
		})
	}

	require.NoError(t, group.Wait())
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestZeroValueGroup(t *testing.T) {
	t.Parallel()

	var group errgroup.Group

	group.Go(func() error { return nil })

	assert.NoError(t, group.Wait())
}
