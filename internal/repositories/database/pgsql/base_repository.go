package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/pix_wallet/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the query surface shared by *pgxpool.Pool and pgx.Tx, so a repository
// runs unchanged against the pool or inside a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TxBeginner is a DBTX that can open transactions, typically *pgxpool.Pool.
type TxBeginner interface {
	DBTX
	Begin(ctx context.Context) (pgx.Tx, error)
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	DB DBTX
}

// Rollback rolls back a transaction, ignoring transactions that already ended.
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// Postgres SQLSTATE codes the repositories react to.
const (
	pgUniqueViolation      = "23505"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgLockNotAvailable     = "55P03"
	pgInvalidText          = "22P02"
	pgCheckViolation       = "23514"
)

// mapPgError wraps err with op and translates store conditions into apperrors
// sentinels. The original error stays in the chain.
func mapPgError(err error, op string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, apperrors.ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%s: %w: %w", op, apperrors.ErrDuplicate, err)
		case pgLockNotAvailable:
			return fmt.Errorf("%s: %w: %w", op, apperrors.ErrContention, err)
		case pgInvalidText:
			// a malformed uuid cannot name a stored row
			return fmt.Errorf("%s: %w: %w", op, apperrors.ErrNotFound, err)
		case pgCheckViolation:
			return fmt.Errorf("%s: %w: %w", op, apperrors.ErrValidation, err)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// isRetryable reports whether the whole transaction may be replayed.
func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgDeadlockDetected || pgErr.Code == pgSerializationFailure
}

// constraintOf returns the violated constraint name, if err carries one.
func constraintOf(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}
