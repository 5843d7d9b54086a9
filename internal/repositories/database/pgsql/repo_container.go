package pgsql

import (
	portsrepo "github.com/SscSPs/pix_wallet/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool, balanceCache portsrepo.BalanceCache, txOpts ...TxOption) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		WalletRepo:   newPgxWalletRepository(dbPool),
		LedgerRepo:   newPgxLedgerRepository(dbPool),
		TransferRepo: newPgxPixTransferRepository(dbPool),
		WebhookRepo:  newPgxPixWebhookEventRepository(dbPool),
		PixKeyRepo:   newPgxPixKeyRepository(dbPool),
		UserRepo:     newPgxUserRepository(dbPool),
		TxManager:    NewTxManager(dbPool, txOpts...),
		BalanceCache: balanceCache,
	}
}
