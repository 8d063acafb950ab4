package account

import (
	"fmt"

	"github.com/LerianStudio/lib-dci/dci/money"
	"github.com/LerianStudio/lib-dci/dci/transfer"
)

// Account is a bank account: an identity, its owner and a balance.
type Account struct {
	id      ID
	userID  UserID
	balance money.Money
}

// Compile-time assertions: Account plays both roles against itself.
var (
	_ transfer.Receiver[Account]        = Account{}
	_ transfer.Sender[Account, Account] = Account{}
	_ transfer.Withdrawer[Account]      = Account{}
)

// New returns an account holding balance. The balance currency is the
// account's currency for its whole lifetime.
func New(id ID, userID UserID, balance money.Money) Account {
	return Account{id: id, userID: userID, balance: balance}
}

// ID returns the account ID.
func (a Account) ID() ID {
	return a.id
}

// UserID returns the owning user's ID.
func (a Account) UserID() UserID {
	return a.userID
}

// Balance returns the current balance.
func (a Account) Balance() money.Money {
	return a.balance
}

// Deposit returns a copy of a with amount added to the balance.
// It fails only when amount is in another currency.
func (a Account) Deposit(amount money.Money) (Account, error) {
	balance, err := a.balance.Add(amount)
	if err != nil {
		return Account{}, fmt.Errorf("deposit into %s: %w", a.id, err)
	}

	a.balance = balance

	return a, nil
}

// Withdraw returns a copy of a with amount taken from the balance. It fails
// with money.ErrInsufficientFunds when the balance would become negative.
func (a Account) Withdraw(amount money.Money) (Account, error) {
	balance, err := a.balance.Subtract(amount)
	if err != nil {
		return Account{}, fmt.Errorf("withdraw from %s: %w", a.id, err)
	}

	if balance.IsNegative() {
		return Account{}, fmt.Errorf("withdraw from %s: %w", a.id, money.NewDomainError(
			money.ErrorInsufficientFunds,
			"amount",
			fmt.Sprintf("balance %s cannot cover %s", a.balance, amount),
		))
	}

	a.balance = balance

	return a, nil
}

// PartyID implements transfer.Party.
func (a Account) PartyID() string {
	return a.id.String()
}

// OnReceive implements transfer.Receiver by depositing amount. from is not
// used for validation.
func (a Account) OnReceive(amount money.Money, _ transfer.Party) (Account, error) {
	return a.Deposit(amount)
}

// Send implements transfer.Sender for account-to-account transfers. Like
// transfer.Send it accepts negative amounts, which move funds from to into a
// and may leave to with a negative balance; use transfer.Context for checked
// transfers.
func (a Account) Send(amount money.Money, to Account) (Account, Account, error) {
	return transfer.Send(a, amount, to)
}

// String formats the account for logs.
func (a Account) String() string {
	return fmt.Sprintf("account %s (user %s): %s", a.id, a.userID, a.balance)
}
