package services

import (
	"context"
	"time"

	"github.com/SscSPs/pix_wallet/internal/core/domain"
)

// AuthToken is a signed access token and its expiry.
type AuthToken struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.UserAccount
}

// AuthSvcFacade defines user registration and login.
type AuthSvcFacade interface {
	// RegisterUser creates a user with a bcrypt-hashed password. The username must be unused.
	RegisterUser(ctx context.Context, username, password string, roles []string) (*domain.UserAccount, error)

	// Authenticate checks credentials and issues a JWT. Bad credentials yield apperrors.ErrUnauthorized.
	Authenticate(ctx context.Context, username, password string) (*AuthToken, error)

	// EnsureBootstrapAdmin creates the configured admin when it does not exist yet.
	EnsureBootstrapAdmin(ctx context.Context, username, password string) error
}
