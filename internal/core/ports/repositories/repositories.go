package repositories

import (
	"context"

	"github.com/SscSPs/pix_wallet/internal/core/domain"
)

// BalanceCache keeps live wallet balances close to the API. It is only a cache:
// the wallet row stays authoritative and misses or failures fall back to the store.
//
// Every Invalidate bumps a per-wallet generation. A reader takes the generation
// before reading the wallet row and passes it to Fill, which stores the balance
// only if no eviction happened in between.
type BalanceCache interface {
	Get(ctx context.Context, walletID string) (domain.Money, bool, error)
	Generation(ctx context.Context, walletID string) (int64, error)
	Fill(ctx context.Context, walletID string, generation int64, balance domain.Money) error
	Invalidate(ctx context.Context, walletIDs ...string) error
}

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	WalletRepo   WalletRepository
	LedgerRepo   LedgerRepository
	TransferRepo PixTransferRepository
	WebhookRepo  PixWebhookEventRepository
	PixKeyRepo   PixKeyRepository
	UserRepo     UserRepository
	TxManager    TransactionManager
	BalanceCache BalanceCache
}
