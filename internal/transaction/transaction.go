package transaction

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a referenced transaction does not exist.
var ErrNotFound = errors.New("transaction not found")

// ErrInvalidInput is returned for malformed or out-of-range fields.
var ErrInvalidInput = errors.New("invalid input")

// Transaction is a recorded debit against one envelope. Transactions
// are immutable: they are created by the debit-and-record operation
// and removed by its reversal, never updated in place.
type Transaction struct {
	ID         uuid.UUID
	EnvelopeID uuid.UUID
	Amount     decimal.Decimal
	Recipient  string
	Date       time.Time
	CreatedAt  time.Time
}
