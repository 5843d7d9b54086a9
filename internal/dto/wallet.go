package dto

import (
	"time"

	"github.com/SscSPs/pix_wallet/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateWalletRequest defines the data needed to open a wallet.
type CreateWalletRequest struct {
	OwnerID string `json:"ownerId" binding:"required"`
}

// CreateWalletResponse is returned when a wallet is opened.
type CreateWalletResponse struct {
	WalletID string `json:"walletId"`
	OwnerID  string `json:"ownerId"`
}

// AmountRequest is the body of deposit and withdraw calls.
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required,decimal_gt0" swaggertype:"number"`
}

// BalanceChangeResponse reports the balance after a deposit or withdraw.
type BalanceChangeResponse struct {
	WalletID   string          `json:"walletId"`
	NewBalance decimal.Decimal `json:"newBalance" swaggertype:"number"`
}

// BalanceResponse reports a live or historical balance.
type BalanceResponse struct {
	WalletID       string          `json:"walletId"`
	CurrentBalance decimal.Decimal `json:"currentBalance" swaggertype:"number"`
	At             *time.Time      `json:"at,omitempty"`
}

// ListLedgerParams defines query parameters for the wallet statement.
type ListLedgerParams struct {
	Limit     int     `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// LedgerEntryResponse is one line of the wallet statement.
type LedgerEntryResponse struct {
	EntryID       string          `json:"entryId"`
	OperationType string          `json:"operationType"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"number"`
	BalanceAfter  decimal.Decimal `json:"balanceAfter" swaggertype:"number"`
	EndToEndID    string          `json:"endToEndId,omitempty"`
	OccurredAt    time.Time       `json:"occurredAt"`
}

// ListLedgerResponse wraps one page of ledger entries.
type ListLedgerResponse struct {
	WalletID  string                `json:"walletId"`
	Entries   []LedgerEntryResponse `json:"entries"`
	NextToken *string               `json:"nextToken,omitempty"`
}

func ToCreateWalletResponse(w *domain.Wallet) CreateWalletResponse {
	return CreateWalletResponse{WalletID: w.WalletID, OwnerID: w.OwnerID}
}

func ToBalanceChangeResponse(w *domain.Wallet) BalanceChangeResponse {
	return BalanceChangeResponse{WalletID: w.WalletID, NewBalance: w.Balance.Decimal()}
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to its DTO.
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:       e.EntryID,
		OperationType: string(e.OperationType),
		Amount:        e.Amount.Decimal(),
		BalanceAfter:  e.BalanceAfter.Decimal(),
		EndToEndID:    e.EndToEndID,
		OccurredAt:    e.OccurredAt,
	}
}

// ToListLedgerResponse never returns a nil Entries slice.
func ToListLedgerResponse(walletID string, entries []domain.LedgerEntry, nextToken *string) ListLedgerResponse {
	out := make([]LedgerEntryResponse, len(entries))
	for i := range entries {
		out[i] = ToLedgerEntryResponse(&entries[i])
	}
	return ListLedgerResponse{WalletID: walletID, Entries: out, NextToken: nextToken}
}
