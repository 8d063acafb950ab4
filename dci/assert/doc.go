// Package assert checks preconditions and returns errors instead of panicking.
//
// transfer.New uses it to reject missing roles. Failures are logged, added to
// the active span as an "assertion.failed" event, and returned as
// *AssertionError, which matches ErrAssertionFailed.
package assert
