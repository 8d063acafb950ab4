package safe

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrDivisionByZero is returned instead of panicking on a zero divisor.
var ErrDivisionByZero = errors.New("division by zero")

// Divide returns numerator / denominator at decimal.DivisionPrecision.
func Divide(numerator, denominator decimal.Decimal) (decimal.Decimal, error) {
	if err := checkDivisor(denominator); err != nil {
		return decimal.Zero, err
	}

	return numerator.Div(denominator), nil
}

// DivideRound returns numerator / denominator rounded half away from zero to
// places fractional digits. money.Money.DividedBy uses it with the currency's
// digits.
func DivideRound(numerator, denominator decimal.Decimal, places int32) (decimal.Decimal, error) {
	if err := checkDivisor(denominator); err != nil {
		return decimal.Zero, err
	}

	return numerator.DivRound(denominator, places), nil
}

func checkDivisor(denominator decimal.Decimal) error {
	if denominator.IsZero() {
		return ErrDivisionByZero
	}

	return nil
}
