package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/pix_wallet/internal/apperrors"
	"github.com/SscSPs/pix_wallet/internal/core/domain"
	portsrepo "github.com/SscSPs/pix_wallet/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pix_wallet/internal/core/ports/services"
	"github.com/SscSPs/pix_wallet/internal/platform/config"
	"github.com/SscSPs/pix_wallet/internal/utils"
)

type authService struct {
	BaseService
	userRepo portsrepo.UserRepository
	config   *config.Config
}

// NewAuthService creates the service that registers users and issues access tokens.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepository) portssvc.AuthSvcFacade {
	return &authService{
		userRepo: userRepo,
		config:   cfg,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) RegisterUser(ctx context.Context, username, password string, roles []string) (*domain.UserAccount, error) {
	parsedRoles := make([]domain.UserRole, 0, len(roles))
	for _, raw := range roles {
		role, err := domain.ParseUserRole(raw)
		if err != nil {
			return nil, err
		}
		if !containsRole(parsedRoles, role) {
			parsedRoles = append(parsedRoles, role)
		}
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		s.LogError(ctx, err, "Failed to check username", slog.String("username", username))
		return nil, err
	}
	if exists {
		return nil, usernameTaken()
	}

	hash, err := utils.HashPassword(password)
	if errors.Is(err, utils.ErrPasswordTooLong) {
		return nil, apperrors.NewValidationError([]apperrors.Violation{{Field: "password", Message: "'password' must be at most 72 bytes"}})
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password", slog.String("username", username))
		return nil, apperrors.NewAppError(500, "failed to hash password", err)
	}

	user := domain.NewUserAccount(username, hash, parsedRoles)
	if err := apperrors.NewValidationError(user.Validate()); err != nil {
		return nil, err
	}

	saved, err := s.userRepo.Save(ctx, user)
	if errors.Is(err, apperrors.ErrDuplicate) {
		return nil, usernameTaken()
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("username", username))
		return nil, err
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", saved.UserID), slog.String("username", saved.Username))
	return saved, nil
}

func containsRole(roles []domain.UserRole, role domain.UserRole) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

func usernameTaken() error {
	return apperrors.NewDuplicateError("username", "Username already in use")
}

// Authenticate never tells the caller whether the username or the password was wrong.
func (s *authService) Authenticate(ctx context.Context, username, password string) (*portssvc.AuthToken, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if errors.Is(err, apperrors.ErrNotFound) {
		s.LogInfo(ctx, "Login attempt for unknown user", slog.String("username", username))
		return nil, invalidCredentials()
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to load user for login", slog.String("username", username))
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogInfo(ctx, "Login attempt with wrong password", slog.String("username", username))
		return nil, invalidCredentials()
	}

	roles := make([]string, len(user.Roles))
	for i, r := range user.Roles {
		roles[i] = string(r)
	}
	token, expiresAt, err := utils.GenerateJWT(user.UserID, user.Username, roles, s.config.JWTSecret, s.config.JWTExpiryDuration, s.config.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token", slog.String("user_id", user.UserID))
		return nil, apperrors.NewAppError(500, "failed to generate token", err)
	}

	return &portssvc.AuthToken{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

func invalidCredentials() error {
	return fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized)
}

func (s *authService) EnsureBootstrapAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		s.LogDebug(ctx, "No bootstrap admin configured")
		return nil
	}
	exists, err := s.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to check bootstrap admin: %w", err)
	}
	if exists {
		return nil
	}
	_, err = s.RegisterUser(ctx, username, password, []string{string(domain.RoleAdmin)})
	if errors.Is(err, apperrors.ErrDuplicate) {
		// Another instance created it first.
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create bootstrap admin: %w", err)
	}
	s.LogInfo(ctx, "Bootstrap admin created", slog.String("username", username))
	return nil
}
