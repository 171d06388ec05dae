package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/utils/folio"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// nextFolio allocates the next folio of prefix for the day of at. The advisory lock
// serialises allocation per day prefix until tx ends. Tables sharing a prefix space
// (sales and purchase invoices) are told apart by the prefix itself.
func (r *BaseRepository) nextFolio(ctx context.Context, tx pgx.Tx, table, prefix string, at time.Time) (string, error) {
	dayPrefix := folio.DayPrefix(prefix, at)
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, dayPrefix); err != nil {
		return "", apperrors.NewAppError(500, "failed to lock folio sequence "+dayPrefix, err)
	}

	query := `SELECT folio FROM ` + table + ` WHERE folio LIKE $1 ORDER BY length(folio) DESC, folio DESC LIMIT 1`
	var last string
	seq := 0
	err := tx.QueryRow(ctx, query, dayPrefix+"%").Scan(&last)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
	case err != nil:
		return "", apperrors.NewAppError(500, "failed to read last folio "+dayPrefix, err)
	default:
		if seq, err = folio.Sequence(prefix, last); err != nil {
			return "", apperrors.NewAppError(500, "corrupt folio in "+table, err)
		}
	}
	return folio.Format(prefix, at, seq+1), nil
}
