package envelope

import "github.com/shopspring/decimal"

// The functions below are the only place balance arithmetic happens.
// They validate and compute but never persist; callers must not write
// a balance these functions rejected.

// Debit returns the envelope's balance reduced by amount.
// Fails when amount is not positive or exceeds the available balance.
func Debit(e *Envelope, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, ErrInvalidAmount
	}

	if e.Balance.LessThan(amount) {
		return decimal.Zero, &InsufficientFundsError{
			EnvelopeID: e.ID,
			Available:  e.Balance,
			Requested:  amount,
		}
	}

	return e.Balance.Sub(amount), nil
}

// Credit returns the envelope's balance increased by amount.
// No upper bound applies; a credit can never break the non-negativity
// invariant. Used for plain balance increases and for restoring a
// balance when a transaction is deleted.
func Credit(e *Envelope, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, ErrInvalidAmount
	}

	return e.Balance.Add(amount), nil
}

// Transfer computes the debit on from and the credit on to as one
// logical unit. Callers must persist both results or neither.
func Transfer(from, to *Envelope, amount decimal.Decimal) (decimal.Decimal, decimal.Decimal, error) {
	newFrom, err := Debit(from, amount)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	newTo, err := Credit(to, amount)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	return newFrom, newTo, nil
}
