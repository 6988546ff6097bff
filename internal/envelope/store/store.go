package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/clutch42/envelope-budget/internal/envelope"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanEnvelope(s scanner) (*envelope.Envelope, error) {
	var e envelope.Envelope

	if err := s.Scan(&e.ID, &e.Name, &e.Balance, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}

	return &e, nil
}

const selectEnvelopeColumns = `id, name, balance, created_at, updated_at`

func (s *Store) CreateEnvelope(ctx context.Context, e *envelope.Envelope) error {
	query := `
		INSERT INTO envelopes (name, balance, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query, e.Name, e.Balance).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating envelope: %w", err)
	}

	return nil
}

func (s *Store) GetEnvelope(ctx context.Context, id uuid.UUID) (*envelope.Envelope, error) {
	query := `SELECT ` + selectEnvelopeColumns + ` FROM envelopes WHERE id = $1`

	e, err := scanEnvelope(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, envelope.ErrNotFound
		}

		return nil, fmt.Errorf("getting envelope: %w", err)
	}

	return e, nil
}

func (s *Store) ListEnvelopes(ctx context.Context) ([]*envelope.Envelope, error) {
	query := `SELECT ` + selectEnvelopeColumns + ` FROM envelopes ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing envelopes: %w", err)
	}
	defer rows.Close()

	var envelopes []*envelope.Envelope

	for rows.Next() {
		e, err := scanEnvelope(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning envelope: %w", err)
		}

		envelopes = append(envelopes, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating envelope rows: %w", err)
	}

	return envelopes, nil
}

func (s *Store) UpdateEnvelope(ctx context.Context, e *envelope.Envelope) error {
	query := `
		UPDATE envelopes
		SET name = $1, balance = $2, updated_at = NOW()
		WHERE id = $3
	`

	res, err := s.db.ExecContext(ctx, query, e.Name, e.Balance, e.ID)
	if err != nil {
		return fmt.Errorf("updating envelope: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating envelope: %w", err)
	}

	if affected == 0 {
		return envelope.ErrNotFound
	}

	return nil
}

// DeleteEnvelope removes an envelope unless transactions still
// reference it. The existence check and the delete share one database
// transaction so a concurrent spend cannot slip between them.
func (s *Store) DeleteEnvelope(ctx context.Context, id uuid.UUID) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning delete: %w", err)
	}
	defer dbTx.Rollback()

	var exists bool

	err = dbTx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM transactions WHERE envelope_id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("checking envelope transactions: %w", err)
	}

	if exists {
		return envelope.ErrHasTransactions
	}

	res, err := dbTx.ExecContext(ctx, `DELETE FROM envelopes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting envelope: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting envelope: %w", err)
	}

	if affected == 0 {
		return envelope.ErrNotFound
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing delete: %w", err)
	}

	return nil
}

type transferTx struct {
	tx *sql.Tx
}

func (s *Store) BeginTransfer(ctx context.Context) (envelope.TransferTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transfer tx: %w", err)
	}

	return &transferTx{tx: dbTx}, nil
}

func (t *transferTx) Commit() error   { return t.tx.Commit() }
func (t *transferTx) Rollback() error { return t.tx.Rollback() }

func (t *transferTx) EnvelopeForUpdate(ctx context.Context, id uuid.UUID) (*envelope.Envelope, error) {
	query := `SELECT ` + selectEnvelopeColumns + ` FROM envelopes WHERE id = $1 FOR UPDATE`

	e, err := scanEnvelope(t.tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, envelope.ErrNotFound
		}

		return nil, fmt.Errorf("locking envelope: %w", err)
	}

	return e, nil
}

func (t *transferTx) UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	query := `
		UPDATE envelopes
		SET balance = $1, updated_at = NOW()
		WHERE id = $2
	`

	if _, err := t.tx.ExecContext(ctx, query, balance, id); err != nil {
		return fmt.Errorf("updating balance: %w", err)
	}

	return nil
}
