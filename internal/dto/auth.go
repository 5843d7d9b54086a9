package dto

import (
	"time"

	"github.com/SscSPs/pix_wallet/internal/core/domain"
)

// LoginRequest holds user credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"tokenType"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// RegisterUserRequest creates an API user.
type RegisterUserRequest struct {
	Username string   `json:"username" binding:"required,min=3,max=64"`
	Password string   `json:"password" binding:"required,min=8,max=72"`
	Roles    []string `json:"roles" binding:"required,min=1,dive,oneof=ADMIN OPERATOR"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToUserResponse(u *domain.UserAccount) UserResponse {
	roles := make([]string, len(u.Roles))
	for i, r := range u.Roles {
		roles[i] = string(r)
	}
	return UserResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		Roles:     roles,
		CreatedAt: u.CreatedAt,
	}
}
