package transaction

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/clutch42/envelope-budget/internal/envelope"
	"github.com/clutch42/envelope-budget/internal/http/respond"
	"github.com/clutch42/envelope-budget/internal/transaction"
)

type Handler struct {
	svc *transaction.Service
}

func NewHandler(svc *transaction.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/envelope/{envelopeID}", h.listByEnvelope)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, transaction.ErrNotFound):
		respond.Error(w, http.StatusNotFound, "transaction not found")
	case errors.Is(err, envelope.ErrNotFound):
		respond.Error(w, http.StatusNotFound, "envelope not found")
	case errors.Is(err, envelope.ErrInsufficientFunds):
		respond.ErrorWithDetails(w, http.StatusBadRequest, "insufficient funds", err.Error())
	case errors.Is(err, envelope.ErrInvalidAmount),
		errors.Is(err, transaction.ErrInvalidInput):
		respond.ErrorWithDetails(w, http.StatusBadRequest, "invalid input", err.Error())
	default:
		slog.Error("transaction request failed", "error", err)
		respond.Error(w, http.StatusInternalServerError, "internal error")
	}
}

type createTransactionRequest struct {
	Date       *time.Time      `json:"date,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Recipient  string          `json:"recipient"`
	EnvelopeID uuid.UUID       `json:"envelopeId"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.ErrorWithDetails(w, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if req.EnvelopeID == uuid.Nil {
		respond.ErrorWithDetails(w, http.StatusBadRequest, "invalid input", "envelopeId is required")
		return
	}

	params := transaction.CreateParams{
		EnvelopeID: req.EnvelopeID,
		Amount:     req.Amount,
		Recipient:  req.Recipient,
	}
	if req.Date != nil {
		params.Date = *req.Date
	}

	tx, err := h.svc.Create(r.Context(), params)
	if err != nil {
		writeError(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(tx))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	txs, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(txs))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	tx, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(tx))
}

func (h *Handler) listByEnvelope(w http.ResponseWriter, r *http.Request) {
	envelopeID, err := uuid.Parse(chi.URLParam(r, "envelopeID"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid envelope id")
		return
	}

	txs, err := h.svc.ListByEnvelope(r.Context(), envelopeID)
	if err != nil {
		writeError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(txs))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	tx, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(tx))
}
