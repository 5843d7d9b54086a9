package mapping

import (
	"github.com/SscSPs/pix_wallet/internal/core/domain"
	"github.com/SscSPs/pix_wallet/internal/models"
)

// ToModelUser converts a domain UserAccount to a model UserAccount
func ToModelUser(d *domain.UserAccount) models.UserAccount {
	roles := make([]string, len(d.Roles))
	for i, r := range d.Roles {
		roles[i] = string(r)
	}
	return models.UserAccount{
		UserID:       d.UserID,
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		Roles:        roles,
		CreatedAt:    d.CreatedAt,
	}
}

// ToDomainUser converts a model UserAccount to a domain UserAccount
func ToDomainUser(m models.UserAccount) *domain.UserAccount {
	roles := make([]domain.UserRole, len(m.Roles))
	for i, r := range m.Roles {
		roles[i] = domain.UserRole(r)
	}
	return &domain.UserAccount{
		UserID:       m.UserID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Roles:        roles,
		CreatedAt:    m.CreatedAt,
	}
}
