package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/SscSPs/pix_wallet/internal/apperrors"
	"github.com/SscSPs/pix_wallet/internal/core/domain"
	portsrepo "github.com/SscSPs/pix_wallet/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pix_wallet/internal/core/ports/services"
	"github.com/SscSPs/pix_wallet/internal/metrics"
	"golang.org/x/sync/errgroup"
)

// pixTransferService runs the double-entry transfer protocol.
type pixTransferService struct {
	BaseService
	transferRepo portsrepo.PixTransferRepository
	txManager    portsrepo.TransactionManager
	cache        portsrepo.BalanceCache
}

// PixTransferServiceOption is a functional option for configuring the transfer service
type PixTransferServiceOption func(*pixTransferService)

// WithTransferBalanceCache makes the service evict both wallets from the cache after a commit.
func WithTransferBalanceCache(cache portsrepo.BalanceCache) PixTransferServiceOption {
	return func(s *pixTransferService) {
		s.cache = cache
	}
}

func NewPixTransferService(transferRepo portsrepo.PixTransferRepository, txManager portsrepo.TransactionManager, options ...PixTransferServiceOption) portssvc.PixTransferSvcFacade {
	svc := &pixTransferService{
		transferRepo: transferRepo,
		txManager:    txManager,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PixTransferSvcFacade = (*pixTransferService)(nil)

func (s *pixTransferService) CreateTransfer(ctx context.Context, cmd portssvc.CreateTransferCommand) (*domain.PixTransfer, error) {
	start := time.Now()
	transfer, err := s.createTransfer(ctx, cmd)
	metrics.RecordPixTransfer(err, time.Since(start).Seconds())
	if err != nil {
		s.logFailure(ctx, err, "Pix transfer failed",
			slog.String("from_wallet_id", cmd.FromWalletID),
			slog.String("to_wallet_id", cmd.ToWalletID),
			slog.String("idempotency_key", cmd.IdempotencyKey),
			slog.String("end_to_end_id", cmd.EndToEndID))
		return nil, err
	}

	s.LogInfo(ctx, "Pix transfer created",
		slog.String("transfer_id", transfer.TransferID),
		slog.String("end_to_end_id", transfer.EndToEndID),
		slog.String("amount", transfer.Amount.String()))
	return transfer, nil
}

func (s *pixTransferService) createTransfer(ctx context.Context, cmd portssvc.CreateTransferCommand) (*domain.PixTransfer, error) {
	transfer := domain.NewPixTransfer(cmd.FromWalletID, cmd.ToWalletID, cmd.Amount, cmd.IdempotencyKey, cmd.EndToEndID)
	if err := apperrors.NewValidationError(transfer.Validate()); err != nil {
		return nil, err
	}

	// Fast path only. The unique index on idempotency_key decides races.
	exists, err := s.transferRepo.ExistsByIdempotencyKey(ctx, cmd.IdempotencyKey)
	if err != nil {
		return nil, fmt.Errorf("failed to check idempotency key: %w", err)
	}
	if exists {
		return nil, duplicateRequest()
	}

	var saved *domain.PixTransfer
	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		locked, err := lockWallets(ctx, repos.Wallets, cmd.FromWalletID, cmd.ToWalletID)
		if err != nil {
			return err
		}
		source, destination := locked[cmd.FromWalletID], locked[cmd.ToWalletID]

		if err := source.Withdraw(cmd.Amount); err != nil {
			return insufficientBalance(err)
		}
		if err := destination.Deposit(cmd.Amount); err != nil {
			return err
		}

		if _, err := repos.Wallets.Save(ctx, source); err != nil {
			return err
		}
		if _, err := repos.Wallets.Save(ctx, destination); err != nil {
			return err
		}

		debit := domain.NewPixDebitEntry(source.WalletID, cmd.EndToEndID, cmd.Amount, source.Balance)
		credit := domain.NewPixCreditEntry(destination.WalletID, cmd.EndToEndID, cmd.Amount, destination.Balance)
		if err := apperrors.NewValidationError(append(debit.Validate(), credit.Validate()...)); err != nil {
			return err
		}
		if _, err := repos.Ledger.Append(ctx, debit); err != nil {
			return err
		}
		if _, err := repos.Ledger.Append(ctx, credit); err != nil {
			return err
		}

		saved, err = repos.Transfers.Save(ctx, transfer)
		return err
	})
	if errors.Is(err, apperrors.ErrDuplicate) {
		return nil, s.describeConflict(ctx, cmd, err)
	}
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, cmd.FromWalletID, cmd.ToWalletID)
	return saved, nil
}

// lockWallets takes the row locks in ascending id order, so two transfers
// between the same pair never wait on each other in a cycle.
func lockWallets(ctx context.Context, locker portsrepo.WalletLocker, walletIDs ...string) (map[string]*domain.Wallet, error) {
	ordered := slices.Clone(walletIDs)
	slices.Sort(ordered)
	ordered = slices.Compact(ordered)

	locked := make(map[string]*domain.Wallet, len(ordered))
	for _, id := range ordered {
		w, err := locker.FindByIDForUpdate(ctx, id)
		if err != nil {
			return nil, walletLookup(err, id)
		}
		locked[id] = w
	}
	return locked, nil
}

func duplicateRequest() error {
	return apperrors.NewDuplicateError("idempotencyKey", "Transfer already processed for this idempotency key")
}

// describeConflict turns a unique violation raised at commit time into the
// caller-facing duplicate error for the key that clashed.
func (s *pixTransferService) describeConflict(ctx context.Context, cmd portssvc.CreateTransferCommand, cause error) error {
	s.LogDebug(ctx, "Unique violation while storing transfer", slog.String("error", cause.Error()))
	exists, err := s.transferRepo.ExistsByIdempotencyKey(ctx, cmd.IdempotencyKey)
	if err != nil {
		// Either key may have clashed; report the replayed request.
		s.LogError(ctx, err, "Failed to identify conflicting transfer key",
			slog.String("idempotency_key", cmd.IdempotencyKey),
			slog.String("end_to_end_id", cmd.EndToEndID))
		return duplicateRequest()
	}
	if exists {
		return duplicateRequest()
	}
	return apperrors.NewDuplicateError("endToEndId",
		fmt.Sprintf("Pix transfer with endToEndId '%s' already exists", cmd.EndToEndID))
}

func (s *pixTransferService) GetTransferByIdempotencyKey(ctx context.Context, idempotencyKey string) (*domain.PixTransfer, error) {
	transfer, err := s.transferRepo.FindByIdempotencyKey(ctx, idempotencyKey)
	if err != nil {
		s.logFailure(ctx, err, "Failed to find transfer", slog.String("idempotency_key", idempotencyKey))
		return nil, err
	}
	return transfer, nil
}

// invalidate evicts the touched wallets concurrently. A failure only leaves the
// entry to expire with its TTL.
func (s *pixTransferService) invalidate(ctx context.Context, walletIDs ...string) {
	if s.cache == nil {
		return
	}
	g, gctx := errgroup.WithContext(ctx)
	for _, walletID := range walletIDs {
		walletID := walletID
		g.Go(func() error {
			return s.cache.Invalidate(gctx, walletID)
		})
	}
	if err := g.Wait(); err != nil {
		s.LogWarn(ctx, err, "Balance cache invalidation failed", slog.Any("wallet_ids", walletIDs))
	}
}
