package money

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/LerianStudio/lib-dci/dci/currency"
)

// maxWireDigits bounds the digits accepted from the wire.
const maxWireDigits = 18

type wireMoney struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
	Digits   *int32 `json:"digits,omitempty"`
}

// MarshalJSON encodes m as {"amount":"10.00","currency":"USD","digits":2}.
// The amount is a string so no precision is lost, and digits travels with it
// so currencies from an injected catalog decode without that catalog. The
// zero Money encodes as {"amount":"0","currency":""}.
func (m Money) MarshalJSON() ([]byte, error) {
	if m.currency.IsZero() {
		return json.Marshal(wireMoney{Amount: m.amount.String()})
	}

	digits := m.currency.Digits()

	return json.Marshal(wireMoney{
		Amount:   m.amount.StringFixed(digits),
		Currency: m.currency.String(),
		Digits:   &digits,
	})
}

// UnmarshalJSON decodes the MarshalJSON form. When digits is absent the code
// is resolved through currency.Default(); use DecodeJSON to pick the catalog.
func (m *Money) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeJSON(data, currency.Default())
	if err != nil {
		return err
	}

	*m = decoded

	return nil
}

// DecodeJSON decodes one Money, resolving codes that arrive without digits
// through catalog.
func DecodeJSON(data []byte, catalog currency.Catalog) (Money, error) {
	var wire wireMoney
	if err := json.Unmarshal(data, &wire); err != nil {
		return Money{}, fmt.Errorf("decode money: %w", err)
	}

	m, err := wire.money(catalog)
	if err != nil {
		return Money{}, fmt.Errorf("decode money: %w", err)
	}

	return m, nil
}

func (w wireMoney) money(catalog currency.Catalog) (Money, error) {
	if w.Currency == "" && w.Digits == nil {
		amount, err := decimal.NewFromString(w.Amount)
		if err != nil {
			return Money{}, DomainError{Code: ErrorInvalidAmount, Field: "amount", Message: fmt.Sprintf("malformed amount %q", w.Amount), Err: err}
		}

		return Money{amount: amount}, nil
	}

	if w.Digits == nil {
		return Parse(w.Amount, w.Currency, catalog)
	}

	code, err := currency.ParseCode(w.Currency)
	if err != nil {
		return Money{}, err
	}

	if *w.Digits < 0 || *w.Digits > maxWireDigits {
		return Money{}, NewDomainError(ErrorInvalidAmount, "digits", fmt.Sprintf("digits %d out of range 0..%d", *w.Digits, maxWireDigits))
	}

	return FromString(w.Amount, currency.New(code, *w.Digits))
}
