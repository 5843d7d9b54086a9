package domain

import (
	"time"

	"github.com/SscSPs/pix_wallet/internal/apperrors"
)

// OperationType is the kind of balance-affecting operation a ledger entry records.
type OperationType string

const (
	OperationDeposit   OperationType = "DEPOSIT"
	OperationWithdraw  OperationType = "WITHDRAW"
	OperationPixDebit  OperationType = "PIX_DEBIT"
	OperationPixCredit OperationType = "PIX_CREDIT"
	OperationRefund    OperationType = "REFUND"
)

// RequiresCorrelation reports whether entries of this kind must carry an end-to-end id.
func (t OperationType) RequiresCorrelation() bool {
	switch t {
	case OperationPixDebit, OperationPixCredit, OperationRefund:
		return true
	default:
		return false
	}
}

// LedgerEntry is an immutable record of one balance change and the balance it left.
// Entries are appended once and never updated.
type LedgerEntry struct {
	EntryID       string        `json:"entryId"`
	WalletID      string        `json:"walletId"`
	EndToEndID    string        `json:"endToEndId,omitempty"`
	OperationType OperationType `json:"operationType"`
	Amount        Money         `json:"amount"`
	BalanceAfter  Money         `json:"balanceAfter"`
	OccurredAt    time.Time     `json:"occurredAt"`
}

func newLedgerEntry(walletID, endToEndID string, op OperationType, amount, balanceAfter Money) *LedgerEntry {
	t := now()
	return &LedgerEntry{
		EntryID:       newEntryID(t),
		WalletID:      walletID,
		EndToEndID:    endToEndID,
		OperationType: op,
		Amount:        amount,
		BalanceAfter:  balanceAfter,
		OccurredAt:    t,
	}
}

func NewDepositEntry(walletID string, amount, balanceAfter Money) *LedgerEntry {
	return newLedgerEntry(walletID, "", OperationDeposit, amount, balanceAfter)
}

func NewWithdrawEntry(walletID string, amount, balanceAfter Money) *LedgerEntry {
	return newLedgerEntry(walletID, "", OperationWithdraw, amount, balanceAfter)
}

func NewPixDebitEntry(walletID, endToEndID string, amount, balanceAfter Money) *LedgerEntry {
	return newLedgerEntry(walletID, endToEndID, OperationPixDebit, amount, balanceAfter)
}

func NewPixCreditEntry(walletID, endToEndID string, amount, balanceAfter Money) *LedgerEntry {
	return newLedgerEntry(walletID, endToEndID, OperationPixCredit, amount, balanceAfter)
}

func NewRefundEntry(walletID, endToEndID string, amount, balanceAfter Money) *LedgerEntry {
	return newLedgerEntry(walletID, endToEndID, OperationRefund, amount, balanceAfter)
}

// Validate returns every problem with the entry. The end-to-end id is only
// mandatory for the Pix operation kinds.
func (e *LedgerEntry) Validate() []apperrors.Violation {
	var violations []apperrors.Violation
	if isBlank(e.WalletID) {
		violations = append(violations, apperrors.Violation{Field: "walletId", Message: "'walletId' must not be null"})
	}
	if e.OperationType == "" {
		violations = append(violations, apperrors.Violation{Field: "operationType", Message: "'operationType' must not be null"})
	}
	if !e.Amount.IsPositive() {
		violations = append(violations, apperrors.Violation{Field: "amount", Message: "'amount' must be greater than zero"})
	}
	if e.BalanceAfter.Decimal().IsNegative() {
		violations = append(violations, apperrors.Violation{Field: "balanceAfterOperation", Message: "'balanceAfterOperation' must not be negative"})
	}
	if e.OccurredAt.IsZero() {
		violations = append(violations, apperrors.Violation{Field: "occurredAt", Message: "'occurredAt' must not be null"})
	}
	if e.OperationType.RequiresCorrelation() && isBlank(e.EndToEndID) {
		violations = append(violations, apperrors.Violation{Field: "endToEndId", Message: "'endToEndId' must not be null or blank for PIX operations"})
	}
	return violations
}
