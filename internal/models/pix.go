package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PixTransfer is a row of the pix_transfers table.
type PixTransfer struct {
	TransferID     string          `db:"transfer_id"`
	FromWalletID   string          `db:"from_wallet_id"`
	ToWalletID     string          `db:"to_wallet_id"`
	Amount         decimal.Decimal `db:"amount"`
	Status         string          `db:"status"`
	EndToEndID     string          `db:"end_to_end_id"`
	IdempotencyKey string          `db:"idempotency_key"`
	CreatedAt      time.Time       `db:"created_at"`
}

// PixWebhookEvent is a row of the pix_webhook_events table.
type PixWebhookEvent struct {
	WebhookEventID string    `db:"webhook_event_id"`
	EventID        string    `db:"event_id"`
	EndToEndID     string    `db:"end_to_end_id"`
	EventType      string    `db:"event_type"`
	OccurredAt     time.Time `db:"occurred_at"`
	ProcessedAt    time.Time `db:"processed_at"`
}

// PixKey is a row of the pix_keys table.
type PixKey struct {
	PixKeyID  string    `db:"pix_key_id"`
	WalletID  string    `db:"wallet_id"`
	KeyType   string    `db:"key_type"`
	KeyValue  string    `db:"key_value"`
	CreatedAt time.Time `db:"created_at"`
}
