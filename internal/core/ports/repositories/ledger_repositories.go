package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/pix_wallet/internal/core/domain"
)

// LedgerReader defines time-ordered queries over a wallet's ledger.
type LedgerReader interface {
	// FindByWallet returns every entry of the wallet, oldest first.
	FindByWallet(ctx context.Context, walletID string) ([]domain.LedgerEntry, error)

	// FindByWalletBefore returns entries with occurred_at <= at, oldest first.
	FindByWalletBefore(ctx context.Context, walletID string, at time.Time) ([]domain.LedgerEntry, error)

	// FindLastBefore returns the latest entry with occurred_at <= at, or nil when there is none.
	FindLastBefore(ctx context.Context, walletID string, at time.Time) (*domain.LedgerEntry, error)

	// ListByWallet returns one page of the statement, newest first, and the token for the next page.
	ListByWallet(ctx context.Context, walletID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error)
}

// LedgerWriter only appends. Entries are never updated or deleted.
type LedgerWriter interface {
	Append(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error)
}

// LedgerRepository combines all ledger-related repository interfaces
type LedgerRepository interface {
	LedgerReader
	LedgerWriter
}
