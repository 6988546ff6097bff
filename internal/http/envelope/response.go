package envelope

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/clutch42/envelope-budget/internal/envelope"
)

type envelopeResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt *time.Time      `json:"updatedAt,omitempty"`
}

type transferResponse struct {
	From envelopeResponse `json:"from"`
	To   envelopeResponse `json:"to"`
}

func toResponse(e *envelope.Envelope) envelopeResponse {
	return envelopeResponse{
		ID:        e.ID,
		Name:      e.Name,
		Balance:   e.Balance,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func toResponseList(envelopes []*envelope.Envelope) []envelopeResponse {
	resp := make([]envelopeResponse, len(envelopes))
	for i, e := range envelopes {
		resp[i] = toResponse(e)
	}

	return resp
}
