// Package transfer composes a sender and a receiver into one transfer.
//
// Core flow:
//   - Receiver and Sender are behavior-only roles; any entity can play them.
//   - Send is the sender role's protocol: withdraw from the sender, then hand
//     the amount and the debited sender to the receiver.
//   - Context pairs two role players for exactly one Transfer call.
//   - Parallel runs independent transfers concurrently.
//
// Transfers are not transactional. When the credit step fails after a
// successful debit, nothing is rolled back: the error is a *CreditError that
// carries the debited sender so the caller can decide how to compensate.
// Because participants are values, the caller's pre-transfer operands are
// never modified.
package transfer
