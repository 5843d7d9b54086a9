package repositories

import (
	"context"

	"github.com/SscSPs/pix_wallet/internal/core/domain"
)

// UserReader defines read operations for user accounts
type UserReader interface {
	// FindByUsername returns apperrors.ErrNotFound when the username is unknown.
	FindByUsername(ctx context.Context, username string) (*domain.UserAccount, error)

	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// UserWriter defines write operations for user accounts
type UserWriter interface {
	Save(ctx context.Context, user *domain.UserAccount) (*domain.UserAccount, error)
}

// UserRepository combines all user-related repository interfaces
type UserRepository interface {
	UserReader
	UserWriter
}
