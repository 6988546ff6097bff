package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/clutch42/envelope-budget/internal/transaction"
)

type transactionResponse struct {
	ID         uuid.UUID       `json:"id"`
	EnvelopeID uuid.UUID       `json:"envelopeId"`
	Amount     decimal.Decimal `json:"amount"`
	Recipient  string          `json:"recipient"`
	Date       time.Time       `json:"date"`
	CreatedAt  time.Time       `json:"createdAt"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:         tx.ID,
		EnvelopeID: tx.EnvelopeID,
		Amount:     tx.Amount,
		Recipient:  tx.Recipient,
		Date:       tx.Date,
		CreatedAt:  tx.CreatedAt,
	}
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
