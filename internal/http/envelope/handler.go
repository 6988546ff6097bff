package envelope

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/clutch42/envelope-budget/internal/envelope"
	"github.com/clutch42/envelope-budget/internal/http/respond"
)

type Handler struct {
	svc *envelope.Service
}

func NewHandler(svc *envelope.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Post("/transfer", h.transfer)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, envelope.ErrNotFound):
		respond.Error(w, http.StatusNotFound, "envelope not found")
	case errors.Is(err, envelope.ErrInsufficientFunds):
		respond.ErrorWithDetails(w, http.StatusBadRequest, "insufficient funds", err.Error())
	case errors.Is(err, envelope.ErrInvalidAmount),
		errors.Is(err, envelope.ErrInvalidInput):
		respond.ErrorWithDetails(w, http.StatusBadRequest, "invalid input", err.Error())
	case errors.Is(err, envelope.ErrHasTransactions):
		respond.ErrorWithDetails(w, http.StatusBadRequest, "envelope still has transactions", err.Error())
	default:
		slog.Error("envelope request failed", "error", err)
		respond.Error(w, http.StatusInternalServerError, "internal error")
	}
}

type createEnvelopeRequest struct {
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createEnvelopeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.ErrorWithDetails(w, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	e, err := h.svc.Create(r.Context(), envelope.CreateParams{
		Name:    req.Name,
		Balance: req.Balance,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(e))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	envelopes, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(envelopes))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	e, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(e))
}

type updateEnvelopeRequest struct {
	Name    *string          `json:"name,omitempty"`
	Balance *decimal.Decimal `json:"balance,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req updateEnvelopeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.ErrorWithDetails(w, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	e, err := h.svc.Update(r.Context(), id, envelope.UpdateParams{
		Name:    req.Name,
		Balance: req.Balance,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(e))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	e, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(e))
}

type transferRequest struct {
	FromID uuid.UUID       `json:"fromId"`
	ToID   uuid.UUID       `json:"toId"`
	Amount decimal.Decimal `json:"amount"`
}

func (h *Handler) transfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.ErrorWithDetails(w, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if req.FromID == uuid.Nil || req.ToID == uuid.Nil {
		respond.ErrorWithDetails(w, http.StatusBadRequest, "invalid input", "fromId and toId are required")
		return
	}

	from, to, err := h.svc.Transfer(r.Context(), req.FromID, req.ToID, req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, transferResponse{
		From: toResponse(from),
		To:   toResponse(to),
	})
}
