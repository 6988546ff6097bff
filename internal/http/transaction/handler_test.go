package transaction_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/clutch42/envelope-budget/internal/envelope"
	transactionHttp "github.com/clutch42/envelope-budget/internal/http/transaction"
	"github.com/clutch42/envelope-budget/internal/transaction"
)

func newServer(t *testing.T) (*httptest.Server, *transaction.MockRepository, *transaction.MockTx) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := transaction.NewMockRepository(ctrl)
	tx := transaction.NewMockTx(ctrl)

	r := chi.NewRouter()
	transactionHttp.NewHandler(transaction.NewService(repo)).Routes(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return srv, repo, tx
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()

	return body
}

func TestCreateTransaction(t *testing.T) {
	srv, repo, tx := newServer(t)

	envID := uuid.New()
	txID := uuid.New()

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().
		EnvelopeForUpdate(gomock.Any(), envID).
		Return(&envelope.Envelope{ID: envID, Balance: decimal.RequireFromString("100.00")}, nil)
	tx.EXPECT().UpdateEnvelopeBalance(gomock.Any(), envID, gomock.Any()).Return(nil)
	tx.EXPECT().
		InsertTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *transaction.Transaction) error {
			txn.ID = txID
			txn.CreatedAt = time.Now()
			return nil
		})
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	payload := `{"envelopeId": "` + envID.String() + `", "amount": "30.00", "recipient": "Corner Store", "date": "2026-03-14T00:00:00Z"}`

	resp, err := http.Post(srv.URL+"/", "application/json", strings.NewReader(payload))
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, txID.String(), body["id"])
	assert.Equal(t, envID.String(), body["envelopeId"])
	assert.Equal(t, "Corner Store", body["recipient"])
	assert.Equal(t, "30", body["amount"])
}

func TestCreateTransaction_InvalidAmount(t *testing.T) {
	srv, _, _ := newServer(t)

	payload := `{"envelopeId": "` + uuid.NewString() + `", "amount": "abc", "recipient": "Corner Store"}`

	resp, err := http.Post(srv.URL+"/", "application/json", strings.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateTransaction_MissingEnvelopeID(t *testing.T) {
	srv, _, _ := newServer(t)

	resp, err := http.Post(srv.URL+"/", "application/json",
		strings.NewReader(`{"amount": "30.00", "recipient": "Corner Store"}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "invalid input", body["error"])
}

func TestCreateTransaction_EnvelopeNotFound(t *testing.T) {
	srv, repo, tx := newServer(t)

	envID := uuid.New()

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().EnvelopeForUpdate(gomock.Any(), envID).Return(nil, envelope.ErrNotFound)
	tx.EXPECT().Rollback().Return(nil)

	payload := `{"envelopeId": "` + envID.String() + `", "amount": "30.00", "recipient": "Corner Store"}`

	resp, err := http.Post(srv.URL+"/", "application/json", strings.NewReader(payload))
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "envelope not found", body["error"])
}

func TestCreateTransaction_InsufficientFunds(t *testing.T) {
	srv, repo, tx := newServer(t)

	envID := uuid.New()

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().
		EnvelopeForUpdate(gomock.Any(), envID).
		Return(&envelope.Envelope{ID: envID, Balance: decimal.RequireFromString("5.00")}, nil)
	tx.EXPECT().Rollback().Return(nil)

	payload := `{"envelopeId": "` + envID.String() + `", "amount": "30.00", "recipient": "Corner Store"}`

	resp, err := http.Post(srv.URL+"/", "application/json", strings.NewReader(payload))
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "insufficient funds", body["error"])
}

func TestListByEnvelope(t *testing.T) {
	srv, repo, _ := newServer(t)

	envID := uuid.New()

	repo.EXPECT().ListByEnvelope(gomock.Any(), envID).Return([]*transaction.Transaction{
		{ID: uuid.New(), EnvelopeID: envID, Recipient: "Cafe", Amount: decimal.RequireFromString("2.50")},
	}, nil)

	resp, err := http.Get(srv.URL + "/envelope/" + envID.String())
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "Cafe", body[0]["recipient"])
}

func TestDeleteTransaction(t *testing.T) {
	srv, repo, tx := newServer(t)

	envID := uuid.New()
	txID := uuid.New()

	existing := &transaction.Transaction{
		ID:         txID,
		EnvelopeID: envID,
		Amount:     decimal.RequireFromString("30.00"),
		Recipient:  "Corner Store",
	}

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().TransactionForUpdate(gomock.Any(), txID).Return(existing, nil)
	tx.EXPECT().
		EnvelopeForUpdate(gomock.Any(), envID).
		Return(&envelope.Envelope{ID: envID, Balance: decimal.RequireFromString("70.00")}, nil)
	tx.EXPECT().UpdateEnvelopeBalance(gomock.Any(), envID, gomock.Any()).Return(nil)
	tx.EXPECT().DeleteTransaction(gomock.Any(), txID).Return(nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/"+txID.String(), nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, txID.String(), body["id"])
}

func TestDeleteTransaction_NotFound(t *testing.T) {
	srv, repo, tx := newServer(t)

	txID := uuid.New()

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().TransactionForUpdate(gomock.Any(), txID).Return(nil, transaction.ErrNotFound)
	tx.EXPECT().Rollback().Return(nil)

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/"+txID.String(), nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "transaction not found", body["error"])
}
