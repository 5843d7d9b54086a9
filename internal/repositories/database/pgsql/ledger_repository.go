package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/pix_wallet/internal/apperrors"
	"github.com/SscSPs/pix_wallet/internal/core/domain"
	portsrepo "github.com/SscSPs/pix_wallet/internal/core/ports/repositories"
	"github.com/SscSPs/pix_wallet/internal/models"
	"github.com/SscSPs/pix_wallet/internal/utils/mapping"
	"github.com/SscSPs/pix_wallet/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
)

const ledgerColumns = `entry_id, wallet_id, end_to_end_id, operation_type, amount, balance_after, occurred_at`

type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(db DBTX) *PgxLedgerRepository {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

var _ portsrepo.LedgerRepository = (*PgxLedgerRepository)(nil)

// Append inserts one entry. There is no update path for ledger rows.
func (r *PgxLedgerRepository) Append(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
	m := mapping.ToModelLedgerEntry(entry)
	query := `
		INSERT INTO ledger_entries (` + ledgerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.DB.Exec(ctx, query,
		m.EntryID,
		m.WalletID,
		m.EndToEndID,
		m.OperationType,
		m.Amount,
		m.BalanceAfter,
		m.OccurredAt,
	)
	if err != nil {
		return nil, mapPgError(err, "failed to append ledger entry for wallet "+m.WalletID)
	}
	saved := *entry
	return &saved, nil
}

func (r *PgxLedgerRepository) FindByWallet(ctx context.Context, walletID string) ([]domain.LedgerEntry, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM ledger_entries
		WHERE wallet_id = $1
		ORDER BY occurred_at ASC, entry_id ASC;
	`
	return r.queryMany(ctx, "failed to list ledger of wallet "+walletID, query, walletID)
}

func (r *PgxLedgerRepository) FindByWalletBefore(ctx context.Context, walletID string, at time.Time) ([]domain.LedgerEntry, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM ledger_entries
		WHERE wallet_id = $1 AND occurred_at <= $2
		ORDER BY occurred_at ASC, entry_id ASC;
	`
	return r.queryMany(ctx, "failed to list ledger of wallet "+walletID, query, walletID, at)
}

// FindLastBefore returns nil, nil when the wallet had no entry at that instant.
func (r *PgxLedgerRepository) FindLastBefore(ctx context.Context, walletID string, at time.Time) (*domain.LedgerEntry, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM ledger_entries
		WHERE wallet_id = $1 AND occurred_at <= $2
		ORDER BY occurred_at DESC, entry_id DESC
		LIMIT 1;
	`
	rows, err := r.DB.Query(ctx, query, walletID, at)
	if err != nil {
		return nil, mapPgError(err, "failed to query last ledger entry of wallet "+walletID)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.LedgerEntry])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapPgError(err, "failed to read last ledger entry of wallet "+walletID)
	}
	entry := mapping.ToDomainLedgerEntry(m)
	return &entry, nil
}

// ListByWallet returns a statement page, newest first. The cursor is the
// (occurred_at, entry_id) pair of the last row on the previous page.
func (r *PgxLedgerRepository) ListByWallet(ctx context.Context, walletID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	args := []any{walletID}
	query := `
		SELECT ` + ledgerColumns + `
		FROM ledger_entries
		WHERE wallet_id = $1`

	if nextToken != nil && *nextToken != "" {
		lastOccurredAt, lastEntryID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", fmt.Errorf("%w: %w", apperrors.ErrValidation, decodeErr))
		}
		query += ` AND (occurred_at, entry_id) < ($2, $3)`
		args = append(args, lastOccurredAt, lastEntryID)
	}
	query += fmt.Sprintf(` ORDER BY occurred_at DESC, entry_id DESC LIMIT %d;`, fetchLimit)

	entries, err := r.queryMany(ctx, "failed to list ledger page of wallet "+walletID, query, args...)
	if err != nil {
		return nil, nil, err
	}

	var newToken *string
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[limit-1]
		token := pagination.EncodeToken(last.OccurredAt, last.EntryID)
		newToken = &token
	}
	return entries, newToken, nil
}

func (r *PgxLedgerRepository) queryMany(ctx context.Context, op, query string, args ...any) ([]domain.LedgerEntry, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, mapPgError(err, op)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.LedgerEntry])
	if err != nil {
		return nil, mapPgError(err, op)
	}
	return mapping.ToDomainLedgerEntrySlice(ms), nil
}
