package transfer

import "github.com/LerianStudio/lib-dci/dci/money"

// Send withdraws amount from from and credits it to to, passing the debited
// sender as the receiver's from argument. On failure both returned states are
// zero values; see DebitError and CreditError.
//
// Send does not check the sign of amount. A negative amount credits the
// sender and debits the receiver, and a receiver whose OnReceive accepts any
// sign (account.Account does) can end below zero. Context.Transfer rejects
// negative amounts before calling Send.
func Send[S Withdrawer[S], R Receiver[R]](from S, amount money.Money, to R) (S, R, error) {
	var (
		noSender   S
		noReceiver R
	)

	debited, err := from.Withdraw(amount)
	if err != nil {
		return noSender, noReceiver, &DebitError{Party: from.PartyID(), Amount: amount, Err: err}
	}

	credited, err := to.OnReceive(amount, debited)
	if err != nil {
		return noSender, noReceiver, &CreditError[S]{Debited: debited, Party: to.PartyID(), Amount: amount, Err: err}
	}

	return debited, credited, nil
}
