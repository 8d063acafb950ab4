//go:build unit

package transfer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LerianStudio/lib-dci/dci/account"
	dciassert "github.com/LerianStudio/lib-dci/dci/assert"
	"github.com/LerianStudio/lib-dci/dci/money"
	"github.com/LerianStudio/lib-dci/dci/transfer"
)

func TestParallel_ReturnsResultsInJobOrder(t *testing.T) {
	t.Parallel()

	jobs := make([]transfer.Job[account.Account, account.Account], 0, 5)
	for i := range 5 {
		jobs = append(jobs, transfer.Job[account.Account, account.Account]{
			From:   newAccount(money.YensInt(100)),
			To:     newAccount(money.YensInt(0)),
			Amount: money.YensInt(int64(i + 1)),
		})
	}

	results, err := transfer.Parallel(context.Background(), jobs, transfer.WithConcurrency(2))

	require.NoError(t, err)
	require.Len(t, results, len(jobs))

	for i, result := range results {
		assert.Equal(t, jobs[i].From.ID(), result.From.ID())
		assert.Equal(t, jobs[i].To.ID(), result.To.ID())
		assert.True(t, money.YensInt(int64(100-(i+1))).Equal(result.From.Balance()))
		assert.True(t, money.YensInt(int64(i+1)).Equal(result.To.Balance()))
	}
}

func TestParallel_Empty(t *testing.T) {
	t.Parallel()

	results, err := transfer.Parallel[*pocket, *pocket](context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestParallel_RejectsSharedParticipants(t *testing.T) {
	t.Parallel()

	shared := newPocket("shared", money.DollarsInt(10))

	jobs := []transfer.Job[*pocket, *pocket]{
		{From: shared, To: newPocket("a", money.DollarsInt(0)), Amount: money.DollarsInt(1)},
		{From: newPocket("b", money.DollarsInt(10)), To: shared, Amount: money.DollarsInt(1)},
	}

	results, err := transfer.Parallel(context.Background(), jobs)

	require.Error(t, err)
	assert.Nil(t, results)
	assert.ErrorIs(t, err, transfer.ErrDependentTransfers)
	assert.ErrorContains(t, err, "shared in jobs 0 and 1")
}

func TestParallel_SelfTransferIsDependent(t *testing.T) {
	t.Parallel()

	self := newPocket("self", money.DollarsInt(10))

	_, err := transfer.Parallel(context.Background(), []transfer.Job[*pocket, *pocket]{
		{From: self, To: self, Amount: money.DollarsInt(1)},
	})

	assert.ErrorIs(t, err, transfer.ErrDependentTransfers)
}

func TestParallel_FailureReturnsNoResults(t *testing.T) {
	t.Parallel()

	jobs := []transfer.Job[*pocket, *pocket]{
		{From: newPocket("a", money.DollarsInt(10)), To: newPocket("b", money.DollarsInt(0)), Amount: money.DollarsInt(1)},
		{From: newPocket("c", money.DollarsInt(0)), To: newPocket("d", money.DollarsInt(0)), Amount: money.DollarsInt(1)},
	}

	results, err := transfer.Parallel(context.Background(), jobs)

	require.Error(t, err)
	assert.Nil(t, results)
	assert.ErrorIs(t, err, money.ErrInsufficientFunds)
	assert.ErrorIs(t, err, transfer.ErrDebitFailed)
	assert.ErrorContains(t, err, "transfer 1:")
}

func TestParallel_NilParticipant(t *testing.T) {
	t.Parallel()

	jobs := []transfer.Job[*pocket, *pocket]{
		{From: nil, To: newPocket("b", money.DollarsInt(0)), Amount: money.DollarsInt(1)},
	}

	_, err := transfer.Parallel(context.Background(), jobs)

	assert.ErrorIs(t, err, dciassert.ErrAssertionFailed)
}

func TestParallel_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	jobs := []transfer.Job[*pocket, *pocket]{
		{From: newPocket("a", money.DollarsInt(10)), To: newPocket("b", money.DollarsInt(0)), Amount: money.DollarsInt(1)},
	}

	_, err := transfer.Parallel(ctx, jobs)

	assert.ErrorIs(t, err, context.Canceled)
}
