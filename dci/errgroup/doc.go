// Package errgroup runs the goroutines of a transfer batch.
//
// It behaves like golang.org/x/sync/errgroup, plus two things the batch
// needs: a panic in one goroutine becomes an ErrPanicRecovered error for the
// whole group instead of crashing the process, and the failure is kept as the
// group context's cause.
package errgroup
