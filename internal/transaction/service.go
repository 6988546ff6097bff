package transaction

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/clutch42/envelope-budget/internal/envelope"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error)
	ListTransactions(ctx context.Context) ([]*Transaction, error)
	ListByEnvelope(ctx context.Context, envelopeID uuid.UUID) ([]*Transaction, error)

	Begin(ctx context.Context) (Tx, error)
}

// Tx is a storage transaction pairing envelope balance writes with
// transaction record writes. Everything staged through it becomes
// visible at Commit or not at all.
type Tx interface {
	EnvelopeForUpdate(ctx context.Context, id uuid.UUID) (*envelope.Envelope, error)
	UpdateEnvelopeBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error
	TransactionForUpdate(ctx context.Context, id uuid.UUID) (*Transaction, error)
	InsertTransaction(ctx context.Context, tx *Transaction) error
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

type CreateParams struct {
	EnvelopeID uuid.UUID
	Amount     decimal.Decimal
	Recipient  string
	Date       time.Time // zero value defaults to the operation's timestamp
}

// Create debits the envelope and records the spend as one unit.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Transaction, error) {
	if strings.TrimSpace(params.Recipient) == "" {
		return nil, fmt.Errorf("%w: recipient is required", ErrInvalidInput)
	}

	if params.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, envelope.ErrInvalidAmount
	}

	date := params.Date
	if date.IsZero() {
		date = s.now()
	}

	dbTx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin spend: %w", err)
	}
	defer dbTx.Rollback()

	env, err := dbTx.EnvelopeForUpdate(ctx, params.EnvelopeID)
	if err != nil {
		return nil, err
	}

	newBalance, err := envelope.Debit(env, params.Amount)
	if err != nil {
		return nil, err
	}

	if err := dbTx.UpdateEnvelopeBalance(ctx, env.ID, newBalance); err != nil {
		return nil, fmt.Errorf("updating envelope balance: %w", err)
	}

	tx := &Transaction{
		EnvelopeID: params.EnvelopeID,
		Amount:     params.Amount,
		Recipient:  params.Recipient,
		Date:       date,
	}
	if err := dbTx.InsertTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("inserting transaction: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return nil, fmt.Errorf("commit spend: %w", err)
	}

	return tx, nil
}

// CreateBatch records several spends against one envelope, debiting
// the records' total. Either every record lands or none do; a total
// exceeding the balance rejects the whole batch.
func (s *Service) CreateBatch(ctx context.Context, envelopeID uuid.UUID, params []CreateParams) ([]*Transaction, error) {
	if len(params) == 0 {
		return nil, nil
	}

	total := decimal.Zero

	for _, p := range params {
		if strings.TrimSpace(p.Recipient) == "" {
			return nil, fmt.Errorf("%w: recipient is required", ErrInvalidInput)
		}

		if p.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, envelope.ErrInvalidAmount
		}

		total = total.Add(p.Amount)
	}

	dbTx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin batch spend: %w", err)
	}
	defer dbTx.Rollback()

	env, err := dbTx.EnvelopeForUpdate(ctx, envelopeID)
	if err != nil {
		return nil, err
	}

	newBalance, err := envelope.Debit(env, total)
	if err != nil {
		return nil, err
	}

	if err := dbTx.UpdateEnvelopeBalance(ctx, env.ID, newBalance); err != nil {
		return nil, fmt.Errorf("updating envelope balance: %w", err)
	}

	txs := make([]*Transaction, len(params))

	for i, p := range params {
		date := p.Date
		if date.IsZero() {
			date = s.now()
		}

		txs[i] = &Transaction{
			EnvelopeID: envelopeID,
			Amount:     p.Amount,
			Recipient:  p.Recipient,
			Date:       date,
		}
		if err := dbTx.InsertTransaction(ctx, txs[i]); err != nil {
			return nil, fmt.Errorf("inserting transaction: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return nil, fmt.Errorf("commit batch spend: %w", err)
	}

	return txs, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx)
}

// ListByEnvelope returns the envelope's transactions, most recent first.
func (s *Service) ListByEnvelope(ctx context.Context, envelopeID uuid.UUID) ([]*Transaction, error) {
	return s.repo.ListByEnvelope(ctx, envelopeID)
}

// Delete restores the envelope's balance by the transaction's amount
// and removes the record as one unit. A transaction whose envelope no
// longer exists reports envelope.ErrNotFound.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	dbTx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin reversal: %w", err)
	}
	defer dbTx.Rollback()

	tx, err := dbTx.TransactionForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}

	env, err := dbTx.EnvelopeForUpdate(ctx, tx.EnvelopeID)
	if err != nil {
		return nil, err
	}

	newBalance, err := envelope.Credit(env, tx.Amount)
	if err != nil {
		return nil, err
	}

	if err := dbTx.UpdateEnvelopeBalance(ctx, env.ID, newBalance); err != nil {
		return nil, fmt.Errorf("restoring envelope balance: %w", err)
	}

	if err := dbTx.DeleteTransaction(ctx, id); err != nil {
		return nil, fmt.Errorf("deleting transaction: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return nil, fmt.Errorf("commit reversal: %w", err)
	}

	return tx, nil
}
