//go:build unit

package transfer_test

import (
	"errors"
	"fmt"

	"github.com/LerianStudio/lib-dci/dci/money"
	"github.com/LerianStudio/lib-dci/dci/transfer"
)

var errCeilingExceeded = errors.New("pocket ceiling exceeded")

// pocket is a second participant type: pointer-backed, with an optional
// ceiling that makes OnReceive fail.
type pocket struct {
	id      string
	balance money.Money
	ceiling money.Money
}

var (
	_ transfer.Sender[*pocket, *pocket] = (*pocket)(nil)
	_ transfer.Receiver[*pocket]        = (*pocket)(nil)
)

func newPocket(id string, balance money.Money) *pocket {
	return &pocket{id: id, balance: balance}
}

func (p *pocket) withCeiling(ceiling money.Money) *pocket {
	next := *p
	next.ceiling = ceiling

	return &next
}

func (p *pocket) PartyID() string { return p.id }

func (p *pocket) Withdraw(amount money.Money) (*pocket, error) {
	balance, err := p.balance.Subtract(amount)
	if err != nil {
		return nil, err
	}

	if balance.IsNegative() {
		return nil, money.NewDomainError(money.ErrorInsufficientFunds, "amount", "pocket is short")
	}

	next := *p
	next.balance = balance

	return &next, nil
}

func (p *pocket) OnReceive(amount money.Money, _ transfer.Party) (*pocket, error) {
	balance, err := p.balance.Add(amount)
	if err != nil {
		return nil, err
	}

	if !p.ceiling.Currency().IsZero() && balance.GreaterThan(p.ceiling) {
		return nil, fmt.Errorf("%s: %w", p.id, errCeilingExceeded)
	}

	next := *p
	next.balance = balance

	return &next, nil
}

func (p *pocket) Send(amount money.Money, to *pocket) (*pocket, *pocket, error) {
	return transfer.Send(p, amount, to)
}
