package pgsql

import (
	"context"

	"github.com/SscSPs/pix_wallet/internal/core/domain"
	portsrepo "github.com/SscSPs/pix_wallet/internal/core/ports/repositories"
	"github.com/SscSPs/pix_wallet/internal/models"
	"github.com/SscSPs/pix_wallet/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db DBTX) *PgxUserRepository {
	return &PgxUserRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

// Save inserts a user. Usernames are unique; a clash wraps apperrors.ErrDuplicate.
func (r *PgxUserRepository) Save(ctx context.Context, user *domain.UserAccount) (*domain.UserAccount, error) {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (user_id, username, password_hash, roles, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.DB.Exec(ctx, query, m.UserID, m.Username, m.PasswordHash, m.Roles, m.CreatedAt)
	if err != nil {
		return nil, mapPgError(err, "failed to save user "+m.Username)
	}
	saved := *user
	return &saved, nil
}

func (r *PgxUserRepository) FindByUsername(ctx context.Context, username string) (*domain.UserAccount, error) {
	query := `
		SELECT user_id, username, password_hash, roles, created_at
		FROM users
		WHERE username = $1;
	`
	rows, err := r.DB.Query(ctx, query, username)
	if err != nil {
		return nil, mapPgError(err, "failed to query user "+username)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.UserAccount])
	if err != nil {
		return nil, mapPgError(err, "user "+username)
	}
	return mapping.ToDomainUser(m), nil
}

func (r *PgxUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1);`, username).Scan(&exists)
	if err != nil {
		return false, mapPgError(err, "failed to check username")
	}
	return exists, nil
}
