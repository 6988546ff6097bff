package envelope

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound is returned when a referenced envelope does not exist.
	ErrNotFound = errors.New("envelope not found")

	// ErrInvalidInput is returned for malformed or out-of-range fields.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidAmount is returned when an amount is zero or negative.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds is returned when a debit exceeds the available balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrHasTransactions is returned when deleting an envelope that still
	// has transactions referencing it.
	ErrHasTransactions = errors.New("envelope still has transactions")
)

// Envelope is a named budget bucket holding a balance of available funds.
type Envelope struct {
	ID        uuid.UUID
	Name      string
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// InsufficientFundsError carries the shortage details for a rejected debit.
type InsufficientFundsError struct {
	EnvelopeID uuid.UUID
	Available  decimal.Decimal
	Requested  decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: available %s, requested %s",
		e.Available.String(), e.Requested.String())
}

func (e *InsufficientFundsError) Unwrap() error {
	return ErrInsufficientFunds
}
