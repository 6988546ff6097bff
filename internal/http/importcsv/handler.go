package importcsv

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/clutch42/envelope-budget/internal/envelope"
	"github.com/clutch42/envelope-budget/internal/http/respond"
	"github.com/clutch42/envelope-budget/internal/importer"
	"github.com/clutch42/envelope-budget/internal/transaction"
)

type Handler struct {
	importSvc *importer.Service
	txSvc     *transaction.Service
}

func NewHandler(importSvc *importer.Service, txSvc *transaction.Service) *Handler {
	return &Handler{
		importSvc: importSvc,
		txSvc:     txSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
}

type importedTransaction struct {
	ID        uuid.UUID       `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Recipient string          `json:"recipient"`
	Date      time.Time       `json:"date"`
}

type importResponse struct {
	Imported     int                   `json:"imported"`
	Transactions []importedTransaction `json:"transactions"`
}

// importCSV debits one envelope by the statement's total and records
// every spend row, all inside one unit. A statement the envelope
// cannot cover is rejected whole.
func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		respond.ErrorWithDetails(w, http.StatusBadRequest, "invalid input", "failed to parse form: "+err.Error())
		return
	}

	envelopeID, err := uuid.Parse(r.FormValue("envelopeId"))
	if err != nil {
		respond.ErrorWithDetails(w, http.StatusBadRequest, "invalid input", "envelopeId field is required")
		return
	}

	format := importer.Format(r.FormValue("format"))
	if format == "" {
		format = importer.FormatStatement
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		respond.ErrorWithDetails(w, http.StatusBadRequest, "invalid input", "file field is required")
		return
	}
	defer file.Close()

	params, err := h.importSvc.Import(format, file)
	if err != nil {
		respond.ErrorWithDetails(w, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	txs, err := h.txSvc.CreateBatch(r.Context(), envelopeID, params)
	if err != nil {
		switch {
		case errors.Is(err, envelope.ErrNotFound):
			respond.Error(w, http.StatusNotFound, "envelope not found")
		case errors.Is(err, envelope.ErrInsufficientFunds):
			respond.ErrorWithDetails(w, http.StatusBadRequest, "insufficient funds", err.Error())
		case errors.Is(err, envelope.ErrInvalidAmount), errors.Is(err, transaction.ErrInvalidInput):
			respond.ErrorWithDetails(w, http.StatusBadRequest, "invalid input", err.Error())
		default:
			respond.Error(w, http.StatusInternalServerError, "internal error")
		}

		return
	}

	resp := importResponse{
		Imported:     len(txs),
		Transactions: make([]importedTransaction, 0, len(txs)),
	}
	for _, tx := range txs {
		resp.Transactions = append(resp.Transactions, importedTransaction{
			ID:        tx.ID,
			Amount:    tx.Amount,
			Recipient: tx.Recipient,
			Date:      tx.Date,
		})
	}

	respond.JSON(w, http.StatusCreated, resp)
}
