package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/pix_wallet/internal/core/domain"
	portsrepo "github.com/SscSPs/pix_wallet/internal/core/ports/repositories"
	"github.com/SscSPs/pix_wallet/internal/models"
	"github.com/SscSPs/pix_wallet/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const walletColumns = `wallet_id, owner_id, balance, status, created_at, updated_at`

type PgxWalletRepository struct {
	BaseRepository
}

// newPgxWalletRepository creates a wallet repository bound to a pool or an open transaction.
func newPgxWalletRepository(db DBTX) *PgxWalletRepository {
	return &PgxWalletRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

// Ensure implementation matches interface
var _ portsrepo.WalletRepository = (*PgxWalletRepository)(nil)

func (r *PgxWalletRepository) FindByID(ctx context.Context, walletID string) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE wallet_id = $1;`
	return r.queryOne(ctx, query, walletID)
}

// FindByIDForUpdate reads the wallet and holds its row lock until the
// surrounding transaction ends.
func (r *PgxWalletRepository) FindByIDForUpdate(ctx context.Context, walletID string) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE wallet_id = $1 FOR UPDATE;`
	return r.queryOne(ctx, query, walletID)
}

func (r *PgxWalletRepository) ExistsByOwner(ctx context.Context, ownerID string) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM wallets WHERE owner_id = $1);`, ownerID).Scan(&exists)
	if err != nil {
		return false, mapPgError(err, "failed to check wallet owner "+ownerID)
	}
	return exists, nil
}

// Save inserts a new wallet or writes balance and status of an existing one.
// owner_id is immutable once stored.
func (r *PgxWalletRepository) Save(ctx context.Context, wallet *domain.Wallet) (*domain.Wallet, error) {
	m := mapping.ToModelWallet(wallet)
	query := `
		INSERT INTO wallets (wallet_id, owner_id, balance, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (wallet_id) DO UPDATE SET
			balance = EXCLUDED.balance,
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + walletColumns + `;`

	return r.queryOne(ctx, query,
		m.WalletID,
		m.OwnerID,
		m.Balance,
		m.Status,
		m.CreatedAt,
		m.UpdatedAt,
	)
}

func (r *PgxWalletRepository) queryOne(ctx context.Context, query string, args ...any) (*domain.Wallet, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, mapPgError(err, "failed to query wallet")
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Wallet])
	if err != nil {
		return nil, mapPgError(err, fmt.Sprintf("wallet %v", args[0]))
	}
	return mapping.ToDomainWallet(m), nil
}
