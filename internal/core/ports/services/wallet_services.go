package services

import (
	"context"
	"time"

	"github.com/SscSPs/pix_wallet/internal/core/domain"
	"github.com/SscSPs/pix_wallet/internal/dto"
)

// WalletReaderSvc defines read operations for wallets and their ledgers
type WalletReaderSvc interface {
	// GetBalance returns the live balance when at is nil, otherwise the balance
	// reconstructed from the ledger as of at.
	GetBalance(ctx context.Context, walletID string, at *time.Time) (domain.Money, error)

	// ListLedger returns one page of the wallet statement, newest first.
	ListLedger(ctx context.Context, walletID string, params dto.ListLedgerParams) (*dto.ListLedgerResponse, error)
}

// WalletWriterSvc defines balance-affecting operations
type WalletWriterSvc interface {
	// OpenWallet creates a zero-balance wallet. One wallet per owner.
	OpenWallet(ctx context.Context, ownerID string) (*domain.Wallet, error)

	// Deposit credits the wallet and appends a DEPOSIT entry atomically.
	Deposit(ctx context.Context, walletID string, amount domain.Money) (*domain.Wallet, error)

	// Withdraw debits the wallet and appends a WITHDRAW entry atomically.
	Withdraw(ctx context.Context, walletID string, amount domain.Money) (*domain.Wallet, error)
}

// WalletSvcFacade combines all wallet-related service interfaces
type WalletSvcFacade interface {
	WalletReaderSvc
	WalletWriterSvc
}
