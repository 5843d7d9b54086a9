package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet is a row of the wallets table.
type Wallet struct {
	WalletID  string          `db:"wallet_id"`
	OwnerID   string          `db:"owner_id"`
	Balance   decimal.Decimal `db:"balance"`
	Status    string          `db:"status"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

// LedgerEntry is a row of the append-only ledger_entries table.
// EndToEndID is NULL for deposits and withdrawals.
type LedgerEntry struct {
	EntryID       string          `db:"entry_id"`
	WalletID      string          `db:"wallet_id"`
	EndToEndID    *string         `db:"end_to_end_id"`
	OperationType string          `db:"operation_type"`
	Amount        decimal.Decimal `db:"amount"`
	BalanceAfter  decimal.Decimal `db:"balance_after"`
	OccurredAt    time.Time       `db:"occurred_at"`
}
