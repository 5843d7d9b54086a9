package pgsql

import (
	"context"

	"github.com/SscSPs/pix_wallet/internal/core/domain"
	portsrepo "github.com/SscSPs/pix_wallet/internal/core/ports/repositories"
	"github.com/SscSPs/pix_wallet/internal/models"
	"github.com/SscSPs/pix_wallet/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxPixKeyRepository struct {
	BaseRepository
}

func newPgxPixKeyRepository(db DBTX) *PgxPixKeyRepository {
	return &PgxPixKeyRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

var _ portsrepo.PixKeyRepository = (*PgxPixKeyRepository)(nil)

func (r *PgxPixKeyRepository) Save(ctx context.Context, key *domain.PixKey) (*domain.PixKey, error) {
	m := mapping.ToModelPixKey(key)
	query := `
		INSERT INTO pix_keys (pix_key_id, wallet_id, key_type, key_value, created_at)
		VALUES ($1, $2, $3, $4, NOW());
	`
	if _, err := r.DB.Exec(ctx, query, m.PixKeyID, m.WalletID, m.KeyType, m.KeyValue); err != nil {
		return nil, mapPgError(err, "failed to save pix key for wallet "+m.WalletID)
	}
	saved := *key
	return &saved, nil
}

func (r *PgxPixKeyRepository) ExistsByKeyValue(ctx context.Context, keyValue string) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM pix_keys WHERE key_value = $1);`, keyValue).Scan(&exists)
	if err != nil {
		return false, mapPgError(err, "failed to check pix key")
	}
	return exists, nil
}

func (r *PgxPixKeyRepository) ListByWallet(ctx context.Context, walletID string) ([]domain.PixKey, error) {
	query := `
		SELECT pix_key_id, wallet_id, key_type, key_value, created_at
		FROM pix_keys
		WHERE wallet_id = $1
		ORDER BY created_at, pix_key_id;
	`
	rows, err := r.DB.Query(ctx, query, walletID)
	if err != nil {
		return nil, mapPgError(err, "failed to query pix keys of wallet "+walletID)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.PixKey])
	if err != nil {
		return nil, mapPgError(err, "failed to read pix keys of wallet "+walletID)
	}

	keys := make([]domain.PixKey, len(ms))
	for i, m := range ms {
		keys[i] = mapping.ToDomainPixKey(m)
	}
	return keys, nil
}
