package money

import (
	"errors"
	"fmt"

	"github.com/LerianStudio/lib-dci/dci/currency"
)

// ErrorCode is a domain error code shared by money arithmetic and balance updates.
type ErrorCode string

const (
	// ErrorInsufficientFunds indicates a debit would leave a negative balance.
	ErrorInsufficientFunds ErrorCode = "0018"
	// ErrorCurrencyMismatch indicates an operation between two different currencies.
	ErrorCurrencyMismatch ErrorCode = "0034"
	// ErrorArithmeticFault indicates the decimal layer could not compute a result.
	ErrorArithmeticFault ErrorCode = "0097"
	// ErrorInvalidAmount indicates a malformed or out-of-range amount.
	ErrorInvalidAmount ErrorCode = "1001"
)

var (
	// ErrInsufficientFunds matches DomainError values with ErrorInsufficientFunds.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrCurrencyMismatch matches DomainError values with ErrorCurrencyMismatch.
	ErrCurrencyMismatch = errors.New("currency mismatch")
	// ErrArithmeticFault matches DomainError values with ErrorArithmeticFault.
	ErrArithmeticFault = errors.New("arithmetic fault")
	// ErrInvalidAmount matches DomainError values with ErrorInvalidAmount.
	ErrInvalidAmount = errors.New("invalid amount")
)

var sentinels = map[ErrorCode]error{
	ErrorInsufficientFunds: ErrInsufficientFunds,
	ErrorCurrencyMismatch:  ErrCurrencyMismatch,
	ErrorArithmeticFault:   ErrArithmeticFault,
	ErrorInvalidAmount:     ErrInvalidAmount,
}

// DomainError represents a structured money or balance error.
type DomainError struct {
	Code    ErrorCode
	Field   string
	Message string
	// Err is the underlying cause, when one exists.
	Err error
}

// Error returns the formatted domain error string.
func (e DomainError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}

	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Field)
}

// Unwrap exposes the sentinel for e.Code and the cause, if any.
func (e DomainError) Unwrap() []error {
	unwrapped := make([]error, 0, 2)

	if sentinel, ok := sentinels[e.Code]; ok {
		unwrapped = append(unwrapped, sentinel)
	}

	if e.Err != nil {
		unwrapped = append(unwrapped, e.Err)
	}

	return unwrapped
}

// NewDomainError creates a domain error with code, field, and message.
func NewDomainError(code ErrorCode, field, message string) error {
	return DomainError{Code: code, Field: field, Message: message}
}

func newMismatchError(field string, left, right Money) error {
	return NewDomainError(ErrorCurrencyMismatch, field, "cannot combine "+describe(left.currency, right.currency))
}

// describe names both currencies, adding digit counts when the codes alone
// would read as identical.
func describe(left, right currency.Currency) string {
	if left.Code() == right.Code() {
		return fmt.Sprintf("%s (%d digits) with %s (%d digits)", left, left.Digits(), right, right.Digits())
	}

	return fmt.Sprintf("%s with %s", left, right)
}
