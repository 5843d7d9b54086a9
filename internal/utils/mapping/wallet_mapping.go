package mapping

import (
	"github.com/SscSPs/pix_wallet/internal/core/domain"
	"github.com/SscSPs/pix_wallet/internal/models"
)

// ToModelWallet converts a domain Wallet to a model Wallet
func ToModelWallet(d *domain.Wallet) models.Wallet {
	return models.Wallet{
		WalletID:  d.WalletID,
		OwnerID:   d.OwnerID,
		Balance:   d.Balance.Decimal(),
		Status:    string(d.Status),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// ToDomainWallet converts a model Wallet to a domain Wallet.
// The balance column carries a CHECK (balance >= 0) constraint.
func ToDomainWallet(m models.Wallet) *domain.Wallet {
	return &domain.Wallet{
		WalletID:  m.WalletID,
		OwnerID:   m.OwnerID,
		Balance:   domain.MustMoney(m.Balance),
		Status:    domain.WalletStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
