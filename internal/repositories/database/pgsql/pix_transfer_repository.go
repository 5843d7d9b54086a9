package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/pix_wallet/internal/apperrors"
	"github.com/SscSPs/pix_wallet/internal/core/domain"
	portsrepo "github.com/SscSPs/pix_wallet/internal/core/ports/repositories"
	"github.com/SscSPs/pix_wallet/internal/models"
	"github.com/SscSPs/pix_wallet/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const transferColumns = `transfer_id, from_wallet_id, to_wallet_id, amount, status, end_to_end_id, idempotency_key, created_at`

// Unique constraints declared in the initial migration.
const (
	constraintTransferIdempotencyKey = "uq_pix_transfers_idempotency_key"
	constraintTransferEndToEndID     = "uq_pix_transfers_end_to_end_id"
)

type PgxPixTransferRepository struct {
	BaseRepository
}

func newPgxPixTransferRepository(db DBTX) *PgxPixTransferRepository {
	return &PgxPixTransferRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

var _ portsrepo.PixTransferRepository = (*PgxPixTransferRepository)(nil)

// Save inserts a transfer or updates its status. Unique violations on the
// idempotency key or the end-to-end id come back wrapping apperrors.ErrDuplicate.
func (r *PgxPixTransferRepository) Save(ctx context.Context, transfer *domain.PixTransfer) (*domain.PixTransfer, error) {
	m := mapping.ToModelPixTransfer(transfer)
	query := `
		INSERT INTO pix_transfers (` + transferColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (transfer_id) DO UPDATE SET status = EXCLUDED.status
		RETURNING ` + transferColumns + `;`

	rows, err := r.DB.Query(ctx, query,
		m.TransferID,
		m.FromWalletID,
		m.ToWalletID,
		m.Amount,
		m.Status,
		m.EndToEndID,
		m.IdempotencyKey,
		m.CreatedAt,
	)
	if err != nil {
		return nil, mapPgError(err, "failed to save pix transfer")
	}
	saved, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.PixTransfer])
	if err != nil {
		switch constraintOf(err) {
		case constraintTransferIdempotencyKey:
			return nil, mapPgError(err, "pix transfer with idempotency key "+m.IdempotencyKey+" already exists")
		case constraintTransferEndToEndID:
			return nil, mapPgError(err, "pix transfer with endToEndId "+m.EndToEndID+" already exists")
		}
		return nil, mapPgError(err, "failed to save pix transfer "+m.TransferID)
	}
	return mapping.ToDomainPixTransfer(saved), nil
}

func (r *PgxPixTransferRepository) FindByCorrelationID(ctx context.Context, endToEndID string) (*domain.PixTransfer, error) {
	query := `SELECT ` + transferColumns + ` FROM pix_transfers WHERE end_to_end_id = $1;`
	t, err := r.queryOne(ctx, query, endToEndID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	return t, err
}

func (r *PgxPixTransferRepository) FindByIdempotencyKey(ctx context.Context, idempotencyKey string) (*domain.PixTransfer, error) {
	query := `SELECT ` + transferColumns + ` FROM pix_transfers WHERE idempotency_key = $1;`
	return r.queryOne(ctx, query, idempotencyKey)
}

func (r *PgxPixTransferRepository) ExistsByIdempotencyKey(ctx context.Context, idempotencyKey string) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM pix_transfers WHERE idempotency_key = $1);`, idempotencyKey).Scan(&exists)
	if err != nil {
		return false, mapPgError(err, "failed to check idempotency key")
	}
	return exists, nil
}

func (r *PgxPixTransferRepository) queryOne(ctx context.Context, query string, arg string) (*domain.PixTransfer, error) {
	rows, err := r.DB.Query(ctx, query, arg)
	if err != nil {
		return nil, mapPgError(err, "failed to query pix transfer")
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.PixTransfer])
	if err != nil {
		return nil, mapPgError(err, "pix transfer "+arg)
	}
	return mapping.ToDomainPixTransfer(m), nil
}
