package transfer

import (
	"context"
	"fmt"

	"github.com/LerianStudio/lib-dci/dci"
	"github.com/LerianStudio/lib-dci/dci/errgroup"
	"github.com/LerianStudio/lib-dci/dci/internal/nilcheck"
	"github.com/LerianStudio/lib-dci/dci/money"
)

// Job is one transfer to run in Parallel.
type Job[S Sender[S, R], R Receiver[R]] struct {
	From   S
	To     R
	Amount money.Money
}

// Result holds the new states produced by a Job.
type Result[S, R any] struct {
	From S
	To   R
}

// Parallel runs jobs concurrently and returns their results in job order.
//
// Jobs must be independent: a participant may appear in at most one job,
// otherwise ErrDependentTransfers is returned before anything runs. The first
// failure cancels the jobs that have not started yet and no results are
// returned; jobs already finished are not undone.
func Parallel[S Sender[S, R], R Receiver[R]](ctx context.Context, jobs []Job[S, R], opts ...Option) ([]Result[S, R], error) {
	if err := checkIndependent(jobs); err != nil {
		return nil, err
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	if ctx == nil {
		ctx = context.Background()
	}

	group, groupCtx := errgroup.WithContext(ctx,
		errgroup.WithLimit(o.concurrency),
		errgroup.WithLogger(dci.NewLoggerFromContext(ctx)),
		errgroup.WithName("transfer.Parallel"),
	)

	results := make([]Result[S, R], len(jobs))

	for i, job := range jobs {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			transfer, err := New(job.From, job.To, opts...)
			if err != nil {
				return fmt.Errorf("transfer %d: %w", i, err)
			}

			from, to, err := transfer.Transfer(groupCtx, job.Amount)
			if err != nil {
				return fmt.Errorf("transfer %d: %w", i, err)
			}

			results[i] = Result[S, R]{From: from, To: to}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func checkIndependent[S Sender[S, R], R Receiver[R]](jobs []Job[S, R]) error {
	seen := make(map[string]int, len(jobs)*2)

	for i, job := range jobs {
		for _, party := range []Party{job.From, job.To} {
			if nilcheck.Interface(party) {
				continue
			}

			if previous, ok := seen[party.PartyID()]; ok {
				return fmt.Errorf("%w: %s in jobs %d and %d", ErrDependentTransfers, party.PartyID(), previous, i)
			}

			seen[party.PartyID()] = i
		}
	}

	return nil
}
