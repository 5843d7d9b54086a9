package repositories

import (
	"context"

	"github.com/SscSPs/pix_wallet/internal/core/domain"
)

// PixTransferRepository persists transfers. The store enforces uniqueness of the
// idempotency key and of the end-to-end id; a violation surfaces as apperrors.ErrDuplicate.
type PixTransferRepository interface {
	Save(ctx context.Context, transfer *domain.PixTransfer) (*domain.PixTransfer, error)

	// FindByCorrelationID returns nil when no transfer carries the end-to-end id.
	FindByCorrelationID(ctx context.Context, endToEndID string) (*domain.PixTransfer, error)

	// FindByIdempotencyKey returns apperrors.ErrNotFound when the key is unknown.
	FindByIdempotencyKey(ctx context.Context, idempotencyKey string) (*domain.PixTransfer, error)

	ExistsByIdempotencyKey(ctx context.Context, idempotencyKey string) (bool, error)
}

// PixWebhookEventRepository persists settlement events, unique by external event id.
type PixWebhookEventRepository interface {
	Save(ctx context.Context, event *domain.PixWebhookEvent) (*domain.PixWebhookEvent, error)

	// FindByEventID returns nil when the event has not been seen.
	FindByEventID(ctx context.Context, eventID string) (*domain.PixWebhookEvent, error)

	ExistsByEventID(ctx context.Context, eventID string) (bool, error)
}

// PixKeyRepository persists Pix keys, unique by key value.
type PixKeyRepository interface {
	Save(ctx context.Context, key *domain.PixKey) (*domain.PixKey, error)
	ExistsByKeyValue(ctx context.Context, keyValue string) (bool, error)
	ListByWallet(ctx context.Context, walletID string) ([]domain.PixKey, error)
}
