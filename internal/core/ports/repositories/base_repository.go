package repositories

import (
	"context"
)

// TxRepositories are bound to one open transaction. Everything done through them
// commits or rolls back together.
type TxRepositories struct {
	Wallets   WalletRepository
	Ledger    LedgerRepository
	Transfers PixTransferRepository
	Webhooks  PixWebhookEventRepository
	PixKeys   PixKeyRepository
}

// TxFunc is a unit of work. It may run more than once when the store asks for a
// retry, so it must not keep state between calls.
type TxFunc func(ctx context.Context, repos TxRepositories) error

// TransactionManager runs units of work atomically.
type TransactionManager interface {
	// WithinTransaction commits when fn returns nil and rolls back otherwise.
	// Lock timeouts and exhausted deadlock retries are reported as apperrors.ErrContention.
	WithinTransaction(ctx context.Context, fn TxFunc) error
}
