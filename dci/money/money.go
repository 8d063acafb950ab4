package money

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/shopspring/decimal"

	"github.com/LerianStudio/lib-dci/dci/currency"
	"github.com/LerianStudio/lib-dci/dci/safe"
)

// Money is an amount tagged with its currency.
//
// The amount always carries exactly currency.Digits() fractional digits.
// Money is not comparable with ==; use Equal.
type Money struct {
	amount   decimal.Decimal
	currency currency.Currency
}

// New rescales amount to the currency's canonical digits, rounding half away
// from zero.
func New(amount decimal.Decimal, cur currency.Currency) Money {
	return Money{
		amount:   amount.Round(cur.Digits()),
		currency: cur,
	}
}

// Zero returns a zero amount in cur.
func Zero(cur currency.Currency) Money {
	return New(decimal.Zero, cur)
}

// FromInt64 builds a Money from a whole number of major units.
func FromInt64(amount int64, cur currency.Currency) Money {
	return New(decimal.NewFromInt(amount), cur)
}

// FromFloat builds a Money from a float. Prefer FromString for literals that
// must not go through binary floating point.
func FromFloat(amount float64, cur currency.Currency) Money {
	return New(decimal.NewFromFloat(amount), cur)
}

// FromString parses a decimal literal such as "12.50".
func FromString(amount string, cur currency.Currency) (Money, error) {
	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, DomainError{
			Code:    ErrorInvalidAmount,
			Field:   "amount",
			Message: fmt.Sprintf("malformed amount %q", amount),
			Err:     err,
		}
	}

	return New(parsed, cur), nil
}

// Parse resolves code through catalog and parses amount.
func Parse(amount, code string, catalog currency.Catalog) (Money, error) {
	cur, err := catalog.Lookup(code)
	if err != nil {
		return Money{}, fmt.Errorf("resolve currency: %w", err)
	}

	return FromString(amount, cur)
}

// Dollars returns amount in USD.
func Dollars(amount decimal.Decimal) Money {
	return New(amount, currency.USD)
}

// DollarsInt returns a whole number of USD.
func DollarsInt(amount int64) Money {
	return FromInt64(amount, currency.USD)
}

// Yens returns amount in JPY.
func Yens(amount decimal.Decimal) Money {
	return New(amount, currency.JPY)
}

// YensInt returns a whole number of JPY.
func YensInt(amount int64) Money {
	return FromInt64(amount, currency.JPY)
}

// Amount returns the rescaled decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency.
func (m Money) Currency() currency.Currency {
	return m.currency
}

// Add returns m + other. Currencies must match.
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, newMismatchError("currency", m, other)
	}

	return New(m.amount.Add(other.amount), m.currency), nil
}

// Subtract returns m - other. Currencies must match.
func (m Money) Subtract(other Money) (Money, error) {
	return m.Add(other.Negated())
}

// MustAdd is Add for callers that have already checked currencies.
// It panics with the DomainError on currency mismatch.
func (m Money) MustAdd(other Money) Money {
	sum, err := m.Add(other)
	if err != nil {
		panic(err)
	}

	return sum
}

// MustSubtract is Subtract for callers that have already checked currencies.
// It panics with the DomainError on currency mismatch.
func (m Money) MustSubtract(other Money) Money {
	difference, err := m.Subtract(other)
	if err != nil {
		panic(err)
	}

	return difference
}

// Times multiplies the amount by factor.
func (m Money) Times(factor decimal.Decimal) Money {
	return New(m.amount.Mul(factor), m.currency)
}

// DividedBy divides the amount by divisor, rounding to the currency's digits.
// Division by zero returns ErrArithmeticFault.
func (m Money) DividedBy(divisor decimal.Decimal) (Money, error) {
	quotient, err := safe.DivideRound(m.amount, divisor, m.currency.Digits())
	if err != nil {
		return Money{}, DomainError{
			Code:    ErrorArithmeticFault,
			Field:   "divisor",
			Message: "cannot divide " + m.String() + " by zero",
			Err:     err,
		}
	}

	return New(quotient, m.currency), nil
}

// Ratio returns m / other as a plain decimal. Currencies must match and other
// must be non-zero.
func (m Money) Ratio(other Money) (decimal.Decimal, error) {
	if m.currency != other.currency {
		return decimal.Zero, newMismatchError("currency", m, other)
	}

	ratio, err := safe.Divide(m.amount, other.amount)
	if err != nil {
		return decimal.Zero, DomainError{
			Code:    ErrorArithmeticFault,
			Field:   "other",
			Message: "ratio against a zero amount",
			Err:     err,
		}
	}

	return ratio, nil
}

// Negated returns -m.
func (m Money) Negated() Money {
	return Money{amount: m.amount.Neg(), currency: m.currency}
}

// Abs returns |m|.
func (m Money) Abs() Money {
	return Money{amount: m.amount.Abs(), currency: m.currency}
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsNegative reports whether the amount is less than zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Equal reports whether m and other have the same currency and amount.
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// Compare orders m against other. It returns -1, 0 or +1 with ok=true when the
// currencies match, and ok=false when they differ: values in different
// currencies are unordered.
func (m Money) Compare(other Money) (cmp int, ok bool) {
	if m.currency != other.currency {
		return 0, false
	}

	return m.amount.Cmp(other.amount), true
}

// LessThan reports whether m < other. It is false for unordered values.
func (m Money) LessThan(other Money) bool {
	cmp, ok := m.Compare(other)

	return ok && cmp < 0
}

// GreaterThan reports whether m > other. It is false for unordered values.
func (m Money) GreaterThan(other Money) bool {
	cmp, ok := m.Compare(other)

	return ok && cmp > 0
}

// Hash returns a hash consistent with Equal: it covers the normalized amount
// and the currency's numeric form.
func (m Money) Hash() uint64 {
	digest := xxhash.New()

	var code [4]byte
	binary.BigEndian.PutUint32(code[:], m.currency.Numeric())

	_, _ = digest.Write(code[:])
	_, _ = digest.WriteString(m.amount.String())

	return digest.Sum64()
}

// String formats m as "<amount> <code>", e.g. "10.00 USD".
func (m Money) String() string {
	if m.currency.IsZero() {
		return m.amount.String()
	}

	return m.amount.StringFixed(m.currency.Digits()) + " " + m.currency.String()
}
