package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/clutch42/envelope-budget/internal/envelope"
	"github.com/clutch42/envelope-budget/internal/transaction"
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

func scanTransaction(s scanner) (*transaction.Transaction, error) {
	var tx transaction.Transaction

	if err := s.Scan(&tx.ID, &tx.EnvelopeID, &tx.Amount, &tx.Recipient, &tx.Date, &tx.CreatedAt); err != nil {
		return nil, err
	}

	return &tx, nil
}

const selectTransactionColumns = `id, envelope_id, amount, recipient, date, created_at`

func (s *Store) GetTransaction(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + ` FROM transactions WHERE id = $1`

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, transaction.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return tx, nil
}

func (s *Store) ListTransactions(ctx context.Context) ([]*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + ` FROM transactions ORDER BY date DESC`

	return s.queryTransactions(ctx, query)
}

func (s *Store) ListByEnvelope(ctx context.Context, envelopeID uuid.UUID) ([]*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions
		WHERE envelope_id = $1
		ORDER BY date DESC`

	return s.queryTransactions(ctx, query, envelopeID)
}

func (s *Store) queryTransactions(ctx context.Context, query string, args ...any) ([]*transaction.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*transaction.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction rows: %w", err)
	}

	return txs, nil
}

type spendTx struct {
	tx *sql.Tx
}

// Begin opens the storage transaction that pairs an envelope balance
// write with transaction record writes.
func (s *Store) Begin(ctx context.Context) (transaction.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning spend tx: %w", err)
	}

	return &spendTx{tx: dbTx}, nil
}

func (t *spendTx) Commit() error   { return t.tx.Commit() }
func (t *spendTx) Rollback() error { return t.tx.Rollback() }

func (t *spendTx) EnvelopeForUpdate(ctx context.Context, id uuid.UUID) (*envelope.Envelope, error) {
	query := `SELECT id, name, balance, created_at, updated_at FROM envelopes WHERE id = $1 FOR UPDATE`

	var e envelope.Envelope

	err := t.tx.QueryRowContext(ctx, query, id).Scan(&e.ID, &e.Name, &e.Balance, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, envelope.ErrNotFound
		}

		return nil, fmt.Errorf("locking envelope: %w", err)
	}

	return &e, nil
}

func (t *spendTx) UpdateEnvelopeBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	query := `
		UPDATE envelopes
		SET balance = $1, updated_at = NOW()
		WHERE id = $2
	`

	if _, err := t.tx.ExecContext(ctx, query, balance, id); err != nil {
		return fmt.Errorf("updating envelope balance: %w", err)
	}

	return nil
}

func (t *spendTx) TransactionForUpdate(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + ` FROM transactions WHERE id = $1 FOR UPDATE`

	tx, err := scanTransaction(t.tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, transaction.ErrNotFound
		}

		return nil, fmt.Errorf("locking transaction: %w", err)
	}

	return tx, nil
}

func (t *spendTx) InsertTransaction(ctx context.Context, tx *transaction.Transaction) error {
	query := `
		INSERT INTO transactions (envelope_id, amount, recipient, date, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err := t.tx.QueryRowContext(ctx, query,
		tx.EnvelopeID,
		tx.Amount,
		tx.Recipient,
		tx.Date,
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting transaction: %w", err)
	}

	return nil
}

func (t *spendTx) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	res, err := t.tx.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}

	if affected == 0 {
		return transaction.ErrNotFound
	}

	return nil
}
