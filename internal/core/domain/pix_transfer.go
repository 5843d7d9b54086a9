package domain

import (
	"time"

	"github.com/SscSPs/pix_wallet/internal/apperrors"
)

// PixTransferStatus is the settlement state of a transfer.
type PixTransferStatus string

const (
	PixTransferPending   PixTransferStatus = "PENDING"
	PixTransferConfirmed PixTransferStatus = "CONFIRMED"
	PixTransferFailed    PixTransferStatus = "FAILED"
	PixTransferRefunded  PixTransferStatus = "REFUNDED"
)

// PixTransfer is one request to move funds between two wallets.
// IdempotencyKey and EndToEndID are both unique in the store.
type PixTransfer struct {
	TransferID     string            `json:"transferId"`
	FromWalletID   string            `json:"fromWalletId"`
	ToWalletID     string            `json:"toWalletId"`
	Amount         Money             `json:"amount"`
	Status         PixTransferStatus `json:"status"`
	EndToEndID     string            `json:"endToEndId"`
	IdempotencyKey string            `json:"idempotencyKey"`
	CreatedAt      time.Time         `json:"createdAt"`
}

// NewPixTransfer builds a PENDING transfer. Call Validate before persisting it.
func NewPixTransfer(fromWalletID, toWalletID string, amount Money, idempotencyKey, endToEndID string) *PixTransfer {
	return &PixTransfer{
		TransferID:     newID(),
		FromWalletID:   fromWalletID,
		ToWalletID:     toWalletID,
		Amount:         amount,
		Status:         PixTransferPending,
		EndToEndID:     endToEndID,
		IdempotencyKey: idempotencyKey,
		CreatedAt:      now(),
	}
}

func (t *PixTransfer) Validate() []apperrors.Violation {
	var violations []apperrors.Violation
	if isBlank(t.FromWalletID) {
		violations = append(violations, apperrors.Violation{Field: "fromWalletId", Message: "'fromWalletId' must not be null"})
	}
	if isBlank(t.ToWalletID) {
		violations = append(violations, apperrors.Violation{Field: "toWalletId", Message: "'toWalletId' must not be null"})
	}
	if !isBlank(t.FromWalletID) && t.FromWalletID == t.ToWalletID {
		violations = append(violations, apperrors.Violation{Field: "toWalletId", Message: "'fromWalletId' and 'toWalletId' must be different"})
	}
	if !t.Amount.IsPositive() {
		violations = append(violations, apperrors.Violation{Field: "amount", Message: "'amount' must be greater than zero"})
	}
	if isBlank(t.IdempotencyKey) {
		violations = append(violations, apperrors.Violation{Field: "idempotencyKey", Message: "'idempotencyKey' must not be null or blank"})
	}
	if isBlank(t.EndToEndID) {
		violations = append(violations, apperrors.Violation{Field: "endToEndId", Message: "'endToEndId' must not be null or blank"})
	}
	return violations
}
