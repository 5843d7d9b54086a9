package dto

import (
	"time"

	"github.com/SscSPs/pix_wallet/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePixTransferRequest defines the body of a transfer request.
type CreatePixTransferRequest struct {
	FromWalletID   string          `json:"fromWalletId" binding:"required,uuid"`
	ToWalletID     string          `json:"toWalletId" binding:"required,uuid,nefield=FromWalletID"`
	Amount         decimal.Decimal `json:"amount" binding:"required,decimal_gt0" swaggertype:"number"`
	IdempotencyKey string          `json:"idempotencyKey" binding:"required,max=128"`
	EndToEndID     string          `json:"endToEndId" binding:"required,max=64"`
}

// PixTransferResponse mirrors domain.PixTransfer.
type PixTransferResponse struct {
	TransferID     string          `json:"transferId"`
	EndToEndID     string          `json:"endToEndId"`
	IdempotencyKey string          `json:"idempotencyKey"`
	FromWalletID   string          `json:"fromWalletId"`
	ToWalletID     string          `json:"toWalletId"`
	Amount         decimal.Decimal `json:"amount" swaggertype:"number"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// PixWebhookRequest is a settlement notification from the payment network.
type PixWebhookRequest struct {
	EventID    string    `json:"eventId" binding:"required"`
	EndToEndID string    `json:"endToEndId" binding:"required"`
	EventType  string    `json:"eventType" binding:"required"`
	OccurredAt time.Time `json:"occurredAt" binding:"required"`
}

// PixWebhookResponse mirrors domain.PixWebhookEvent.
type PixWebhookResponse struct {
	WebhookEventID string    `json:"webhookEventId"`
	EventID        string    `json:"eventId"`
	EndToEndID     string    `json:"endToEndId"`
	EventType      string    `json:"eventType"`
	OccurredAt     time.Time `json:"occurredAt"`
	ProcessedAt    time.Time `json:"processedAt"`
}

// RegisterPixKeyRequest binds a key to the wallet in the path.
type RegisterPixKeyRequest struct {
	KeyType  string `json:"keyType" binding:"required,pixkeytype"`
	KeyValue string `json:"keyValue" binding:"required,max=77"`
}

// PixKeyResponse mirrors domain.PixKey.
type PixKeyResponse struct {
	PixKeyID string `json:"pixKeyId"`
	WalletID string `json:"walletId"`
	KeyType  string `json:"keyType"`
	KeyValue string `json:"keyValue"`
}

func ToPixTransferResponse(t *domain.PixTransfer) PixTransferResponse {
	return PixTransferResponse{
		TransferID:     t.TransferID,
		EndToEndID:     t.EndToEndID,
		IdempotencyKey: t.IdempotencyKey,
		FromWalletID:   t.FromWalletID,
		ToWalletID:     t.ToWalletID,
		Amount:         t.Amount.Decimal(),
		Status:         string(t.Status),
		CreatedAt:      t.CreatedAt,
	}
}

func ToPixWebhookResponse(e *domain.PixWebhookEvent) PixWebhookResponse {
	return PixWebhookResponse{
		WebhookEventID: e.WebhookEventID,
		EventID:        e.EventID,
		EndToEndID:     e.EndToEndID,
		EventType:      string(e.EventType),
		OccurredAt:     e.OccurredAt,
		ProcessedAt:    e.ProcessedAt,
	}
}

func ToPixKeyResponse(k *domain.PixKey) PixKeyResponse {
	return PixKeyResponse{
		PixKeyID: k.PixKeyID,
		WalletID: k.WalletID,
		KeyType:  string(k.KeyType),
		KeyValue: k.KeyValue,
	}
}
