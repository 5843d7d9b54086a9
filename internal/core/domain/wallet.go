package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/pix_wallet/internal/apperrors"
)

// WalletStatus is the lifecycle state of a wallet.
type WalletStatus string

const (
	WalletStatusActive  WalletStatus = "ACTIVE"
	WalletStatusBlocked WalletStatus = "BLOCKED"
)

// Wallet owns a single balance. Only Deposit and Withdraw change it, and callers must
// hold an exclusive lock on the wallet row while they do.
type Wallet struct {
	WalletID  string       `json:"walletId"`
	OwnerID   string       `json:"ownerId"`
	Balance   Money        `json:"balance"`
	Status    WalletStatus `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// OpenWallet creates an active wallet with a zero balance.
// Uniqueness of the owner is checked by the caller against the store.
func OpenWallet(ownerID string) (*Wallet, error) {
	t := now()
	w := &Wallet{
		WalletID:  newID(),
		OwnerID:   ownerID,
		Balance:   ZeroMoney(),
		Status:    WalletStatusActive,
		CreatedAt: t,
		UpdatedAt: t,
	}
	if err := apperrors.NewValidationError(w.Validate()); err != nil {
		return nil, err
	}
	return w, nil
}

// Deposit adds a strictly positive amount to the balance.
func (w *Wallet) Deposit(amount Money) error {
	if !amount.IsPositive() {
		return apperrors.NewValidationError([]apperrors.Violation{{Field: "amount", Message: "'amount' must be greater than zero"}})
	}
	if w.Status != WalletStatusActive {
		return apperrors.NewBusinessError(fmt.Sprintf("Wallet '%s' is not active", w.WalletID))
	}
	w.Balance = w.Balance.Add(amount)
	w.UpdatedAt = now()
	return nil
}

// Withdraw removes amount from the balance or fails with ErrInsufficientBalance.
func (w *Wallet) Withdraw(amount Money) error {
	if !amount.IsPositive() {
		return apperrors.NewValidationError([]apperrors.Violation{{Field: "amount", Message: "'amount' must be greater than zero"}})
	}
	if w.Status != WalletStatusActive {
		return apperrors.NewBusinessError(fmt.Sprintf("Wallet '%s' is not active", w.WalletID))
	}
	balance, err := w.Balance.Sub(amount)
	if err != nil {
		return fmt.Errorf("wallet %s cannot cover %s: %w", w.WalletID, amount, err)
	}
	w.Balance = balance
	w.UpdatedAt = now()
	return nil
}

// Validate returns every structural problem with the wallet. An empty result means valid.
func (w *Wallet) Validate() []apperrors.Violation {
	var violations []apperrors.Violation
	if isBlank(w.OwnerID) {
		violations = append(violations, apperrors.Violation{Field: "ownerId", Message: "'ownerId' cannot be null or blank"})
	}
	if w.Balance.Decimal().IsNegative() {
		violations = append(violations, apperrors.Violation{Field: "balance", Message: "'balance' cannot be negative"})
	}
	if w.Status == "" {
		violations = append(violations, apperrors.Violation{Field: "status", Message: "'status' cannot be null"})
	}
	return violations
}
