package services

import (
	"context"
	"time"

	"github.com/SscSPs/pix_wallet/internal/core/domain"
)

// CreateTransferCommand is a request to move Amount from one wallet to another.
type CreateTransferCommand struct {
	FromWalletID   string
	ToWalletID     string
	Amount         domain.Money
	IdempotencyKey string
	EndToEndID     string
}

// PixTransferSvcFacade is the transfer orchestrator.
type PixTransferSvcFacade interface {
	// CreateTransfer debits the source, credits the destination, records both ledger
	// entries and the PENDING transfer as one unit. A reused idempotency key fails
	// with apperrors.ErrDuplicate and changes nothing.
	CreateTransfer(ctx context.Context, cmd CreateTransferCommand) (*domain.PixTransfer, error)

	// GetTransferByIdempotencyKey lets a caller fetch the result of an earlier request.
	GetTransferByIdempotencyKey(ctx context.Context, idempotencyKey string) (*domain.PixTransfer, error)
}

// HandleWebhookCommand is an inbound settlement notification. EventType is the raw
// value received and is parsed by the service.
type HandleWebhookCommand struct {
	EventID    string
	EndToEndID string
	EventType  string
	OccurredAt time.Time
}

// PixWebhookSvcFacade deduplicates and stores settlement events.
type PixWebhookSvcFacade interface {
	// HandleEvent returns the stored event for a known EventID without writing.
	HandleEvent(ctx context.Context, cmd HandleWebhookCommand) (*domain.PixWebhookEvent, error)
}

// PixKeySvcFacade manages the keys that address a wallet.
type PixKeySvcFacade interface {
	RegisterPixKey(ctx context.Context, walletID, keyType, keyValue string) (*domain.PixKey, error)
	ListPixKeys(ctx context.Context, walletID string) ([]domain.PixKey, error)
}
