package transfer

import (
	"errors"
	"fmt"

	"github.com/LerianStudio/lib-dci/dci/money"
)

var (
	// ErrDebitFailed matches errors raised while withdrawing from the sender.
	ErrDebitFailed = errors.New("transfer debit failed")
	// ErrCreditFailed matches errors raised while crediting the receiver.
	ErrCreditFailed = errors.New("transfer credit failed")
	// ErrContextConsumed is returned when a Context is used for a second transfer.
	ErrContextConsumed = errors.New("transfer context already used")
	// ErrDependentTransfers is returned by Parallel when jobs share a participant.
	ErrDependentTransfers = errors.New("transfers share a participant")
)

// DebitError reports a failed withdrawal. Nothing changed.
type DebitError struct {
	Party  string
	Amount money.Money
	Err    error
}

func (e *DebitError) Error() string {
	return fmt.Sprintf("debit %s from %s: %v", e.Amount, e.Party, e.Err)
}

// Unwrap exposes ErrDebitFailed and the cause.
func (e *DebitError) Unwrap() []error {
	return []error{ErrDebitFailed, e.Err}
}

// CreditError reports a failed credit after the sender was debited. Debited
// is the sender state after withdrawal; it is not rolled back.
type CreditError[S any] struct {
	Debited S
	Party   string
	Amount  money.Money
	Err     error
}

func (e *CreditError[S]) Error() string {
	return fmt.Sprintf("credit %s to %s: %v", e.Amount, e.Party, e.Err)
}

// Unwrap exposes ErrCreditFailed and the cause.
func (e *CreditError[S]) Unwrap() []error {
	return []error{ErrCreditFailed, e.Err}
}
