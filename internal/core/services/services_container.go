package services

import (
	portsrepo "github.com/SscSPs/pix_wallet/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pix_wallet/internal/core/ports/services"
	"github.com/SscSPs/pix_wallet/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	var walletOpts []WalletServiceOption
	var transferOpts []PixTransferServiceOption
	if repos.BalanceCache != nil {
		walletOpts = append(walletOpts, WithBalanceCache(repos.BalanceCache))
		transferOpts = append(transferOpts, WithTransferBalanceCache(repos.BalanceCache))
	}

	container.Wallet = NewWalletService(repos.WalletRepo, repos.LedgerRepo, repos.TxManager, walletOpts...)
	container.PixTransfer = NewPixTransferService(repos.TransferRepo, repos.TxManager, transferOpts...)
	container.PixWebhook = NewPixWebhookService(repos.WebhookRepo, repos.TransferRepo)
	container.PixKey = NewPixKeyService(repos.PixKeyRepo, repos.WalletRepo)
	container.Auth = NewAuthService(cfg, repos.UserRepo)

	return container
}
