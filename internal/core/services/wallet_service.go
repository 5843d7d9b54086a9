package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/pix_wallet/internal/apperrors"
	"github.com/SscSPs/pix_wallet/internal/core/domain"
	portsrepo "github.com/SscSPs/pix_wallet/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pix_wallet/internal/core/ports/services"
	"github.com/SscSPs/pix_wallet/internal/dto"
	"github.com/SscSPs/pix_wallet/internal/metrics"
)

type walletService struct {
	BaseService
	walletRepo portsrepo.WalletReader
	ledgerRepo portsrepo.LedgerReader
	txManager  portsrepo.TransactionManager
	cache      portsrepo.BalanceCache
}

// WalletServiceOption is a functional option for configuring the wallet service
type WalletServiceOption func(*walletService)

// WithBalanceCache puts a read-through cache in front of live balance reads.
func WithBalanceCache(cache portsrepo.BalanceCache) WalletServiceOption {
	return func(s *walletService) {
		s.cache = cache
	}
}

// NewWalletService creates a wallet service. Every balance mutation runs through txManager.
func NewWalletService(walletRepo portsrepo.WalletReader, ledgerRepo portsrepo.LedgerReader, txManager portsrepo.TransactionManager, options ...WalletServiceOption) portssvc.WalletSvcFacade {
	svc := &walletService{
		walletRepo: walletRepo,
		ledgerRepo: ledgerRepo,
		txManager:  txManager,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.WalletSvcFacade = (*walletService)(nil)

func (s *walletService) OpenWallet(ctx context.Context, ownerID string) (*domain.Wallet, error) {
	wallet, err := domain.OpenWallet(ownerID)
	if err != nil {
		metrics.RecordWalletCreation(err)
		s.LogWarn(ctx, err, "Rejected wallet creation", slog.String("owner_id", ownerID))
		return nil, err
	}

	var created *domain.Wallet
	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		exists, err := repos.Wallets.ExistsByOwner(ctx, ownerID)
		if err != nil {
			return err
		}
		if exists {
			return duplicateOwner()
		}
		created, err = repos.Wallets.Save(ctx, wallet)
		if errors.Is(err, apperrors.ErrDuplicate) {
			return duplicateOwner()
		}
		return err
	})
	metrics.RecordWalletCreation(err)
	if err != nil {
		s.logFailure(ctx, err, "Failed to open wallet", slog.String("owner_id", ownerID))
		return nil, err
	}

	s.LogInfo(ctx, "Wallet opened", slog.String("wallet_id", created.WalletID), slog.String("owner_id", ownerID))
	return created, nil
}

func duplicateOwner() error {
	return apperrors.NewBusinessError("Owner ID already has a wallet")
}

func (s *walletService) Deposit(ctx context.Context, walletID string, amount domain.Money) (*domain.Wallet, error) {
	wallet, err := s.mutateBalance(ctx, walletID, amount, func(w *domain.Wallet) (*domain.LedgerEntry, error) {
		if err := w.Deposit(amount); err != nil {
			return nil, err
		}
		return domain.NewDepositEntry(w.WalletID, amount, w.Balance), nil
	})
	metrics.RecordDeposit(err)
	if err != nil {
		s.logFailure(ctx, err, "Deposit failed", slog.String("wallet_id", walletID), slog.String("amount", amount.String()))
		return nil, err
	}
	return wallet, nil
}

func (s *walletService) Withdraw(ctx context.Context, walletID string, amount domain.Money) (*domain.Wallet, error) {
	wallet, err := s.mutateBalance(ctx, walletID, amount, func(w *domain.Wallet) (*domain.LedgerEntry, error) {
		if err := w.Withdraw(amount); err != nil {
			return nil, insufficientBalance(err)
		}
		return domain.NewWithdrawEntry(w.WalletID, amount, w.Balance), nil
	})
	metrics.RecordWithdraw(err)
	if err != nil {
		s.logFailure(ctx, err, "Withdraw failed", slog.String("wallet_id", walletID), slog.String("amount", amount.String()))
		return nil, err
	}
	return wallet, nil
}

// mutateBalance locks the wallet, applies op, then saves the wallet and the
// entry op returned in the same transaction.
func (s *walletService) mutateBalance(ctx context.Context, walletID string, amount domain.Money, op func(*domain.Wallet) (*domain.LedgerEntry, error)) (*domain.Wallet, error) {
	if err := requirePositive(amount); err != nil {
		return nil, err
	}

	var updated *domain.Wallet
	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		wallet, err := repos.Wallets.FindByIDForUpdate(ctx, walletID)
		if err != nil {
			return walletLookup(err, walletID)
		}
		entry, err := op(wallet)
		if err != nil {
			return err
		}
		if err := apperrors.NewValidationError(entry.Validate()); err != nil {
			return err
		}
		if updated, err = repos.Wallets.Save(ctx, wallet); err != nil {
			return err
		}
		_, err = repos.Ledger.Append(ctx, entry)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, walletID)
	return updated, nil
}

// GetBalance reads the live balance through the cache, or replays the ledger
// up to at. A wallet with no entry at that instant had a zero balance.
func (s *walletService) GetBalance(ctx context.Context, walletID string, at *time.Time) (domain.Money, error) {
	if at == nil {
		return s.liveBalance(ctx, walletID)
	}

	if _, err := s.walletRepo.FindByID(ctx, walletID); err != nil {
		err = walletLookup(err, walletID)
		s.logFailure(ctx, err, "Failed to find wallet for historical balance", slog.String("wallet_id", walletID))
		return domain.ZeroMoney(), err
	}

	entry, err := s.ledgerRepo.FindLastBefore(ctx, walletID, *at)
	if err != nil {
		s.LogError(ctx, err, "Failed to read ledger for historical balance", slog.String("wallet_id", walletID), slog.Time("at", *at))
		return domain.ZeroMoney(), err
	}
	if entry == nil {
		return domain.ZeroMoney(), nil
	}
	return entry.BalanceAfter, nil
}

func (s *walletService) liveBalance(ctx context.Context, walletID string) (domain.Money, error) {
	fillable := false
	var generation int64
	if s.cache != nil {
		balance, ok, err := s.cache.Get(ctx, walletID)
		switch {
		case err != nil:
			metrics.RecordBalanceCacheLookup("error")
			s.LogWarn(ctx, err, "Balance cache read failed, falling back to store", slog.String("wallet_id", walletID))
		case ok:
			metrics.RecordBalanceCacheLookup("hit")
			return balance, nil
		default:
			metrics.RecordBalanceCacheLookup("miss")
		}

		// Taken before the row read; a write committed after it makes the fill a no-op.
		if generation, err = s.cache.Generation(ctx, walletID); err != nil {
			s.LogWarn(ctx, err, "Balance cache generation read failed", slog.String("wallet_id", walletID))
		} else {
			fillable = true
		}
	}

	wallet, err := s.walletRepo.FindByID(ctx, walletID)
	if err != nil {
		err = walletLookup(err, walletID)
		s.logFailure(ctx, err, "Failed to find wallet", slog.String("wallet_id", walletID))
		return domain.ZeroMoney(), err
	}

	if fillable {
		if err := s.cache.Fill(ctx, walletID, generation, wallet.Balance); err != nil {
			s.LogWarn(ctx, err, "Balance cache write failed", slog.String("wallet_id", walletID))
		}
	}
	return wallet.Balance, nil
}

func (s *walletService) ListLedger(ctx context.Context, walletID string, params dto.ListLedgerParams) (*dto.ListLedgerResponse, error) {
	if _, err := s.walletRepo.FindByID(ctx, walletID); err != nil {
		err = walletLookup(err, walletID)
		s.logFailure(ctx, err, "Failed to find wallet for ledger listing", slog.String("wallet_id", walletID))
		return nil, err
	}

	entries, nextToken, err := s.ledgerRepo.ListByWallet(ctx, walletID, params.Limit, params.NextToken)
	if err != nil {
		s.logFailure(ctx, err, "Failed to list ledger", slog.String("wallet_id", walletID))
		return nil, fmt.Errorf("failed to list ledger of wallet %s: %w", walletID, err)
	}

	resp := dto.ToListLedgerResponse(walletID, entries, nextToken)
	return &resp, nil
}

func (s *walletService) invalidate(ctx context.Context, walletIDs ...string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, walletIDs...); err != nil {
		s.LogWarn(ctx, err, "Balance cache invalidation failed", slog.Any("wallet_ids", walletIDs))
	}
}
