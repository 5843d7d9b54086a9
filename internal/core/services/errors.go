package services

import (
	"errors"
	"fmt"

	"github.com/SscSPs/pix_wallet/internal/apperrors"
	"github.com/SscSPs/pix_wallet/internal/core/domain"
)

// isClientError reports failures caused by the request rather than the system.
// They are logged at warn level.
func isClientError(err error) bool {
	return errors.Is(err, apperrors.ErrValidation) ||
		errors.Is(err, apperrors.ErrBusinessRule) ||
		errors.Is(err, apperrors.ErrInsufficientBalance) ||
		errors.Is(err, apperrors.ErrNotFound) ||
		errors.Is(err, apperrors.ErrDuplicate)
}

func requirePositive(amount domain.Money) error {
	if amount.IsPositive() {
		return nil
	}
	return apperrors.NewValidationError([]apperrors.Violation{{Field: "amount", Message: "'amount' must be greater than zero"}})
}

// insufficientBalance gives ErrInsufficientBalance a caller-facing message while
// keeping the sentinel in the chain.
func insufficientBalance(err error) error {
	if !errors.Is(err, apperrors.ErrInsufficientBalance) {
		return err
	}
	return &apperrors.ValidationError{
		Kind:       apperrors.ErrInsufficientBalance,
		Violations: []apperrors.Violation{{Field: "amount", Message: "Insufficient balance in source wallet"}},
	}
}

// walletLookup names the missing wallet in a not-found error. Other errors pass through.
func walletLookup(err error, walletID string) error {
	if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}
	return apperrors.NewNotFoundError("walletId", fmt.Sprintf("Wallet not found: %s", walletID))
}
