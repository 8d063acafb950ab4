package transfer

import "github.com/LerianStudio/lib-dci/dci/money"

// Party identifies a transfer participant in logs, spans and errors.
type Party interface {
	PartyID() string
}

// Receiver can accept funds. OnReceive returns the credited state; from is
// the sender's debited state and is informational only.
type Receiver[R any] interface {
	Party
	OnReceive(amount money.Money, from Party) (R, error)
}

// Sender can send funds to a receiver of type R, returning both new states.
type Sender[S, R any] interface {
	Party
	Send(amount money.Money, to R) (S, R, error)
}

// Withdrawer can be debited. It is the data-side capability Send relies on.
type Withdrawer[S any] interface {
	Party
	Withdraw(amount money.Money) (S, error)
}
