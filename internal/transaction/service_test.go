package transaction_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/clutch42/envelope-budget/internal/envelope"
	"github.com/clutch42/envelope-budget/internal/transaction"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decimalEq(s string) gomock.Matcher {
	want := dec(s)
	return gomock.Cond(func(x any) bool {
		d, ok := x.(decimal.Decimal)
		return ok && d.Equal(want)
	})
}

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	dbTx := transaction.NewMockTx(ctrl)
	svc := transaction.NewService(repo)

	envID := uuid.New()
	env := &envelope.Envelope{ID: envID, Name: "Groceries", Balance: dec("100.00")}
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().Begin(gomock.Any()).Return(dbTx, nil)
	dbTx.EXPECT().EnvelopeForUpdate(gomock.Any(), envID).Return(env, nil)
	dbTx.EXPECT().UpdateEnvelopeBalance(gomock.Any(), envID, decimalEq("70.00")).Return(nil)
	dbTx.EXPECT().
		InsertTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
			tx.ID = uuid.New()
			tx.CreatedAt = time.Now()
			return nil
		})
	dbTx.EXPECT().Commit().Return(nil)
	dbTx.EXPECT().Rollback().Return(nil)

	got, err := svc.Create(context.Background(), transaction.CreateParams{
		EnvelopeID: envID,
		Amount:     dec("30.00"),
		Recipient:  "Corner Store",
		Date:       date,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, got.ID)
	assert.Equal(t, envID, got.EnvelopeID)
	assert.Equal(t, "Corner Store", got.Recipient)
	assert.True(t, got.Amount.Equal(dec("30.00")))
	assert.Equal(t, date, got.Date)
}

func TestService_Create_DefaultsDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	dbTx := transaction.NewMockTx(ctrl)
	svc := transaction.NewService(repo)

	envID := uuid.New()
	env := &envelope.Envelope{ID: envID, Balance: dec("100.00")}

	repo.EXPECT().Begin(gomock.Any()).Return(dbTx, nil)
	dbTx.EXPECT().EnvelopeForUpdate(gomock.Any(), envID).Return(env, nil)
	dbTx.EXPECT().UpdateEnvelopeBalance(gomock.Any(), envID, gomock.Any()).Return(nil)
	dbTx.EXPECT().InsertTransaction(gomock.Any(), gomock.Any()).Return(nil)
	dbTx.EXPECT().Commit().Return(nil)
	dbTx.EXPECT().Rollback().Return(nil)

	before := time.Now()

	got, err := svc.Create(context.Background(), transaction.CreateParams{
		EnvelopeID: envID,
		Amount:     dec("5.00"),
		Recipient:  "Bakery",
	})
	require.NoError(t, err)

	assert.False(t, got.Date.Before(before))
	assert.False(t, got.Date.After(time.Now()))
}

func TestService_Create_InsufficientFunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	dbTx := transaction.NewMockTx(ctrl)
	svc := transaction.NewService(repo)

	envID := uuid.New()
	env := &envelope.Envelope{ID: envID, Balance: dec("20.00")}

	repo.EXPECT().Begin(gomock.Any()).Return(dbTx, nil)
	dbTx.EXPECT().EnvelopeForUpdate(gomock.Any(), envID).Return(env, nil)
	// Nothing is persisted; only the deferred rollback runs.
	dbTx.EXPECT().Rollback().Return(nil)

	_, err := svc.Create(context.Background(), transaction.CreateParams{
		EnvelopeID: envID,
		Amount:     dec("30.00"),
		Recipient:  "Corner Store",
	})
	assert.ErrorIs(t, err, envelope.ErrInsufficientFunds)
}

func TestService_Create_EnvelopeMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	dbTx := transaction.NewMockTx(ctrl)
	svc := transaction.NewService(repo)

	envID := uuid.New()

	repo.EXPECT().Begin(gomock.Any()).Return(dbTx, nil)
	dbTx.EXPECT().EnvelopeForUpdate(gomock.Any(), envID).Return(nil, envelope.ErrNotFound)
	dbTx.EXPECT().Rollback().Return(nil)

	_, err := svc.Create(context.Background(), transaction.CreateParams{
		EnvelopeID: envID,
		Amount:     dec("30.00"),
		Recipient:  "Corner Store",
	})
	assert.ErrorIs(t, err, envelope.ErrNotFound)
}

func TestService_Create_InvalidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	svc := transaction.NewService(repo)

	_, err := svc.Create(context.Background(), transaction.CreateParams{
		EnvelopeID: uuid.New(),
		Amount:     dec("30.00"),
		Recipient:  "   ",
	})
	assert.ErrorIs(t, err, transaction.ErrInvalidInput)

	_, err = svc.Create(context.Background(), transaction.CreateParams{
		EnvelopeID: uuid.New(),
		Amount:     dec("-30.00"),
		Recipient:  "Corner Store",
	})
	assert.ErrorIs(t, err, envelope.ErrInvalidAmount)
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	dbTx := transaction.NewMockTx(ctrl)
	svc := transaction.NewService(repo)

	envID := uuid.New()
	txID := uuid.New()

	// The scenario from the debit side in reverse: deleting a 30.00
	// spend puts the envelope back at 100.00.
	existing := &transaction.Transaction{
		ID:         txID,
		EnvelopeID: envID,
		Amount:     dec("30.00"),
		Recipient:  "Corner Store",
	}
	env := &envelope.Envelope{ID: envID, Balance: dec("70.00")}

	repo.EXPECT().Begin(gomock.Any()).Return(dbTx, nil)
	dbTx.EXPECT().TransactionForUpdate(gomock.Any(), txID).Return(existing, nil)
	dbTx.EXPECT().EnvelopeForUpdate(gomock.Any(), envID).Return(env, nil)
	dbTx.EXPECT().UpdateEnvelopeBalance(gomock.Any(), envID, decimalEq("100.00")).Return(nil)
	dbTx.EXPECT().DeleteTransaction(gomock.Any(), txID).Return(nil)
	dbTx.EXPECT().Commit().Return(nil)
	dbTx.EXPECT().Rollback().Return(nil)

	got, err := svc.Delete(context.Background(), txID)
	require.NoError(t, err)
	assert.Equal(t, txID, got.ID)
}

func TestService_Delete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	dbTx := transaction.NewMockTx(ctrl)
	svc := transaction.NewService(repo)

	txID := uuid.New()

	repo.EXPECT().Begin(gomock.Any()).Return(dbTx, nil)
	dbTx.EXPECT().TransactionForUpdate(gomock.Any(), txID).Return(nil, transaction.ErrNotFound)
	dbTx.EXPECT().Rollback().Return(nil)

	_, err := svc.Delete(context.Background(), txID)
	assert.ErrorIs(t, err, transaction.ErrNotFound)
}

func TestService_Delete_OrphanedEnvelope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	dbTx := transaction.NewMockTx(ctrl)
	svc := transaction.NewService(repo)

	envID := uuid.New()
	txID := uuid.New()

	existing := &transaction.Transaction{ID: txID, EnvelopeID: envID, Amount: dec("30.00")}

	repo.EXPECT().Begin(gomock.Any()).Return(dbTx, nil)
	dbTx.EXPECT().TransactionForUpdate(gomock.Any(), txID).Return(existing, nil)
	dbTx.EXPECT().EnvelopeForUpdate(gomock.Any(), envID).Return(nil, envelope.ErrNotFound)
	dbTx.EXPECT().Rollback().Return(nil)

	_, err := svc.Delete(context.Background(), txID)
	assert.ErrorIs(t, err, envelope.ErrNotFound)
}

func TestService_CreateBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	dbTx := transaction.NewMockTx(ctrl)
	svc := transaction.NewService(repo)

	envID := uuid.New()
	env := &envelope.Envelope{ID: envID, Balance: dec("100.00")}
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	params := []transaction.CreateParams{
		{Amount: dec("10.00"), Recipient: "Cafe", Date: date},
		{Amount: dec("25.50"), Recipient: "Pharmacy", Date: date},
	}

	repo.EXPECT().Begin(gomock.Any()).Return(dbTx, nil)
	dbTx.EXPECT().EnvelopeForUpdate(gomock.Any(), envID).Return(env, nil)
	// One debit for the batch total.
	dbTx.EXPECT().UpdateEnvelopeBalance(gomock.Any(), envID, decimalEq("64.50")).Return(nil)
	dbTx.EXPECT().InsertTransaction(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	dbTx.EXPECT().Commit().Return(nil)
	dbTx.EXPECT().Rollback().Return(nil)

	txs, err := svc.CreateBatch(context.Background(), envID, params)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, envID, txs[0].EnvelopeID)
	assert.Equal(t, "Pharmacy", txs[1].Recipient)
}

func TestService_CreateBatch_InsufficientTotal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	dbTx := transaction.NewMockTx(ctrl)
	svc := transaction.NewService(repo)

	envID := uuid.New()
	env := &envelope.Envelope{ID: envID, Balance: dec("30.00")}

	// Each row is coverable alone but the total is not; the batch must
	// fail whole.
	params := []transaction.CreateParams{
		{Amount: dec("20.00"), Recipient: "Cafe"},
		{Amount: dec("20.00"), Recipient: "Pharmacy"},
	}

	repo.EXPECT().Begin(gomock.Any()).Return(dbTx, nil)
	dbTx.EXPECT().EnvelopeForUpdate(gomock.Any(), envID).Return(env, nil)
	dbTx.EXPECT().Rollback().Return(nil)

	_, err := svc.CreateBatch(context.Background(), envID, params)
	assert.ErrorIs(t, err, envelope.ErrInsufficientFunds)
}

func TestService_CreateBatch_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	svc := transaction.NewService(repo)

	txs, err := svc.CreateBatch(context.Background(), uuid.New(), nil)
	require.NoError(t, err)
	assert.Empty(t, txs)
}
