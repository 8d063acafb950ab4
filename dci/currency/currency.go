package currency

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rmg/iso4217"
)

var (
	// ErrUnknownCurrency is returned when a catalog has no entry for a code.
	ErrUnknownCurrency = errors.New("unknown currency")
	// ErrInvalidCode is returned when a code is not three ASCII letters.
	ErrInvalidCode = errors.New("invalid currency code")
)

// codeLength is the length of an ISO-4217 alphabetic code.
const codeLength = 3

// Code is an upper-case ISO-4217 alphabetic code such as "USD".
type Code string

// ParseCode normalizes s into a Code. Surrounding whitespace is trimmed and
// letters are upper-cased.
func ParseCode(s string) (Code, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	if len(normalized) != codeLength {
		return "", fmt.Errorf("%w: %q", ErrInvalidCode, s)
	}

	for i := 0; i < len(normalized); i++ {
		if normalized[i] < 'A' || normalized[i] > 'Z' {
			return "", fmt.Errorf("%w: %q", ErrInvalidCode, s)
		}
	}

	return Code(normalized), nil
}

// Currency is a currency code paired with its canonical fractional digits.
// Two currencies are equal only when code and digits both match. The zero
// value is not a valid currency.
type Currency struct {
	code    Code
	digits  int32
	numeric uint32
}

// Predefined currencies for the common helpers, with their ISO-4217 minor
// units.
var (
	USD = New("USD", 2)
	EUR = New("EUR", 2)
	JPY = New("JPY", 0)
)

// New builds a Currency from an already validated code and digit count.
// Catalog implementations use it; applications should prefer Catalog.Lookup.
func New(code Code, digits int32) Currency {
	return Currency{code: code, digits: digits, numeric: numericCode(code)}
}

// numericCode returns the ISO-4217 numeric code, or for codes ISO does not
// assign (BTC, in-house units) the letters packed big-endian. Packed codes
// start at 0x414141, far above the three-digit ISO range.
func numericCode(code Code) uint32 {
	if number, _ := iso4217.ByCode(string(code)); number > 0 {
		return uint32(number)
	}

	var packed uint32
	for i := 0; i < len(code); i++ {
		packed = packed<<8 | uint32(code[i])
	}

	return packed
}

// Code returns the alphabetic code.
func (c Currency) Code() Code {
	return c.code
}

// Digits returns the canonical number of fractional digits.
func (c Currency) Digits() int32 {
	return c.digits
}

// Numeric returns the ISO-4217 numeric code (840 for USD). Codes outside ISO
// get a stable value above 999; the zero Currency returns 0.
func (c Currency) Numeric() uint32 {
	return c.numeric
}

// IsZero reports whether c is the zero Currency.
func (c Currency) IsZero() bool {
	return c.code == ""
}

// String returns the alphabetic code.
func (c Currency) String() string {
	return string(c.code)
}
