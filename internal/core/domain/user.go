package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/pix_wallet/internal/apperrors"
)

// UserRole grants access to groups of operations.
type UserRole string

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleOperator UserRole = "OPERATOR"
)

// ParseUserRole is case-insensitive and accepts an optional "ROLE_" prefix.
func ParseUserRole(raw string) (UserRole, error) {
	r := UserRole(strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(raw)), "ROLE_"))
	switch r {
	case RoleAdmin, RoleOperator:
		return r, nil
	default:
		return "", apperrors.NewValidationError([]apperrors.Violation{{
			Field:   "roles",
			Message: fmt.Sprintf("Invalid role: '%s'", raw),
		}})
	}
}

// UserAccount is an operator of the API. PasswordHash is a bcrypt hash.
type UserAccount struct {
	UserID       string     `json:"userId"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	Roles        []UserRole `json:"roles"`
	CreatedAt    time.Time  `json:"createdAt"`
}

func NewUserAccount(username, passwordHash string, roles []UserRole) *UserAccount {
	return &UserAccount{
		UserID:       newID(),
		Username:     username,
		PasswordHash: passwordHash,
		Roles:        roles,
		CreatedAt:    now(),
	}
}

func (u *UserAccount) HasRole(role UserRole) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func (u *UserAccount) Validate() []apperrors.Violation {
	var violations []apperrors.Violation
	if isBlank(u.Username) {
		violations = append(violations, apperrors.Violation{Field: "username", Message: "'username' must not be null or blank"})
	}
	if isBlank(u.PasswordHash) {
		violations = append(violations, apperrors.Violation{Field: "password", Message: "'password' must not be null or blank"})
	}
	if len(u.Roles) == 0 {
		violations = append(violations, apperrors.Violation{Field: "roles", Message: "'roles' must contain at least one role"})
	}
	return violations
}
