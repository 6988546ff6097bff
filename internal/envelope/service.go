package envelope

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=envelope
type Repository interface {
	CreateEnvelope(ctx context.Context, e *Envelope) error
	GetEnvelope(ctx context.Context, id uuid.UUID) (*Envelope, error)
	ListEnvelopes(ctx context.Context) ([]*Envelope, error)
	UpdateEnvelope(ctx context.Context, e *Envelope) error
	DeleteEnvelope(ctx context.Context, id uuid.UUID) error

	BeginTransfer(ctx context.Context) (TransferTx, error)
}

// TransferTx is a storage transaction spanning both envelopes of a
// transfer. EnvelopeForUpdate must lock the row until Commit or
// Rollback so the read-check-write sequence is isolated.
type TransferTx interface {
	EnvelopeForUpdate(ctx context.Context, id uuid.UUID) (*Envelope, error)
	UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name    string
	Balance decimal.Decimal
}

type UpdateParams struct {
	Name    *string
	Balance *decimal.Decimal
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Envelope, error) {
	if strings.TrimSpace(params.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if params.Balance.IsNegative() {
		return nil, fmt.Errorf("%w: balance must not be negative", ErrInvalidInput)
	}

	e := &Envelope{
		Name:    params.Name,
		Balance: params.Balance,
	}
	if err := s.repo.CreateEnvelope(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Envelope, error) {
	return s.repo.GetEnvelope(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Envelope, error) {
	return s.repo.ListEnvelopes(ctx)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Envelope, error) {
	if params.Name != nil && strings.TrimSpace(*params.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if params.Balance != nil && params.Balance.IsNegative() {
		return nil, fmt.Errorf("%w: balance must not be negative", ErrInvalidInput)
	}

	e, err := s.repo.GetEnvelope(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		e.Name = *params.Name
	}

	if params.Balance != nil {
		e.Balance = *params.Balance
	}

	if err := s.repo.UpdateEnvelope(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

// Delete removes an envelope. Envelopes with transactions still
// referencing them are protected; the store reports ErrHasTransactions.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (*Envelope, error) {
	e, err := s.repo.GetEnvelope(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.DeleteEnvelope(ctx, id); err != nil {
		return nil, err
	}

	return e, nil
}

// Transfer moves amount from one envelope to another inside a single
// storage transaction. Either both balances change or neither does.
func (s *Service) Transfer(ctx context.Context, fromID, toID uuid.UUID, amount decimal.Decimal) (*Envelope, *Envelope, error) {
	if fromID == toID {
		return nil, nil, fmt.Errorf("%w: cannot transfer to the same envelope", ErrInvalidInput)
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, nil, ErrInvalidAmount
	}

	tx, err := s.repo.BeginTransfer(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("begin transfer: %w", err)
	}
	defer tx.Rollback()

	// Lock rows in a deterministic order so concurrent opposite
	// transfers cannot deadlock.
	first, second := fromID, toID
	if bytes.Compare(second[:], first[:]) < 0 {
		first, second = second, first
	}

	locked := make(map[uuid.UUID]*Envelope, 2)

	for _, id := range []uuid.UUID{first, second} {
		e, err := tx.EnvelopeForUpdate(ctx, id)
		if err != nil {
			return nil, nil, err
		}

		locked[id] = e
	}

	from, to := locked[fromID], locked[toID]

	newFrom, newTo, err := Transfer(from, to, amount)
	if err != nil {
		return nil, nil, err
	}

	if err := tx.UpdateBalance(ctx, from.ID, newFrom); err != nil {
		return nil, nil, fmt.Errorf("updating source balance: %w", err)
	}

	if err := tx.UpdateBalance(ctx, to.ID, newTo); err != nil {
		return nil, nil, fmt.Errorf("updating destination balance: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("commit transfer: %w", err)
	}

	from.Balance = newFrom
	to.Balance = newTo

	return from, to, nil
}
