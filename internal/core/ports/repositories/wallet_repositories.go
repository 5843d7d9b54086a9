package repositories

import (
	"context"

	"github.com/SscSPs/pix_wallet/internal/core/domain"
)

// WalletReader defines plain read operations for wallets.
type WalletReader interface {
	// FindByID returns apperrors.ErrNotFound when the wallet does not exist.
	FindByID(ctx context.Context, walletID string) (*domain.Wallet, error)

	// ExistsByOwner reports whether the owner already has a wallet.
	ExistsByOwner(ctx context.Context, ownerID string) (bool, error)
}

// WalletLocker acquires the exclusive row lock that every balance mutation needs.
// It only has meaning inside a transaction; the lock is held until commit or rollback.
type WalletLocker interface {
	FindByIDForUpdate(ctx context.Context, walletID string) (*domain.Wallet, error)
}

// WalletWriter defines write operations for wallets.
type WalletWriter interface {
	// Save inserts the wallet or updates it by id.
	Save(ctx context.Context, wallet *domain.Wallet) (*domain.Wallet, error)
}

// WalletRepository combines all wallet-related repository interfaces
type WalletRepository interface {
	WalletReader
	WalletLocker
	WalletWriter
}
