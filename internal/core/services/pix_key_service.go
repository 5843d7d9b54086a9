package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/pix_wallet/internal/apperrors"
	"github.com/SscSPs/pix_wallet/internal/core/domain"
	portsrepo "github.com/SscSPs/pix_wallet/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pix_wallet/internal/core/ports/services"
)

type pixKeyService struct {
	BaseService
	pixKeyRepo portsrepo.PixKeyRepository
	walletRepo portsrepo.WalletReader
}

func NewPixKeyService(pixKeyRepo portsrepo.PixKeyRepository, walletRepo portsrepo.WalletReader) portssvc.PixKeySvcFacade {
	return &pixKeyService{
		pixKeyRepo: pixKeyRepo,
		walletRepo: walletRepo,
	}
}

var _ portssvc.PixKeySvcFacade = (*pixKeyService)(nil)

func (s *pixKeyService) RegisterPixKey(ctx context.Context, walletID, keyType, keyValue string) (*domain.PixKey, error) {
	logAttrs := []any{slog.String("wallet_id", walletID), slog.String("key_type", keyType)}

	parsedType, err := domain.ParsePixKeyType(keyType)
	if err != nil {
		s.LogWarn(ctx, err, "Rejected Pix key type", logAttrs...)
		return nil, err
	}

	if _, err := s.walletRepo.FindByID(ctx, walletID); err != nil {
		err = walletLookup(err, walletID)
		s.logFailure(ctx, err, "Failed to find wallet for Pix key", logAttrs...)
		return nil, err
	}

	key := domain.NewPixKey(walletID, parsedType, keyValue)
	if err := apperrors.NewValidationError(key.Validate()); err != nil {
		s.LogWarn(ctx, err, "Rejected Pix key", logAttrs...)
		return nil, err
	}

	exists, err := s.pixKeyRepo.ExistsByKeyValue(ctx, keyValue)
	if err != nil {
		s.LogError(ctx, err, "Failed to check Pix key", logAttrs...)
		return nil, err
	}
	if exists {
		return nil, keyAlreadyRegistered()
	}

	saved, err := s.pixKeyRepo.Save(ctx, key)
	if errors.Is(err, apperrors.ErrDuplicate) {
		return nil, keyAlreadyRegistered()
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to save Pix key", logAttrs...)
		return nil, err
	}

	s.LogInfo(ctx, "Pix key registered", append(logAttrs, slog.String("pix_key_id", saved.PixKeyID))...)
	return saved, nil
}

func keyAlreadyRegistered() error {
	return apperrors.NewBusinessError("Pix key already registered")
}

func (s *pixKeyService) ListPixKeys(ctx context.Context, walletID string) ([]domain.PixKey, error) {
	if _, err := s.walletRepo.FindByID(ctx, walletID); err != nil {
		err = walletLookup(err, walletID)
		s.logFailure(ctx, err, "Failed to find wallet for Pix key listing", slog.String("wallet_id", walletID))
		return nil, err
	}
	keys, err := s.pixKeyRepo.ListByWallet(ctx, walletID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list Pix keys", slog.String("wallet_id", walletID))
		return nil, err
	}
	return keys, nil
}
