package mapping

import (
	"github.com/SscSPs/pix_wallet/internal/core/domain"
	"github.com/SscSPs/pix_wallet/internal/models"
)

func ToModelPixTransfer(d *domain.PixTransfer) models.PixTransfer {
	return models.PixTransfer{
		TransferID:     d.TransferID,
		FromWalletID:   d.FromWalletID,
		ToWalletID:     d.ToWalletID,
		Amount:         d.Amount.Decimal(),
		Status:         string(d.Status),
		EndToEndID:     d.EndToEndID,
		IdempotencyKey: d.IdempotencyKey,
		CreatedAt:      d.CreatedAt,
	}
}

func ToDomainPixTransfer(m models.PixTransfer) *domain.PixTransfer {
	return &domain.PixTransfer{
		TransferID:     m.TransferID,
		FromWalletID:   m.FromWalletID,
		ToWalletID:     m.ToWalletID,
		Amount:         domain.MustMoney(m.Amount),
		Status:         domain.PixTransferStatus(m.Status),
		EndToEndID:     m.EndToEndID,
		IdempotencyKey: m.IdempotencyKey,
		CreatedAt:      m.CreatedAt,
	}
}

func ToModelPixWebhookEvent(d *domain.PixWebhookEvent) models.PixWebhookEvent {
	return models.PixWebhookEvent{
		WebhookEventID: d.WebhookEventID,
		EventID:        d.EventID,
		EndToEndID:     d.EndToEndID,
		EventType:      string(d.EventType),
		OccurredAt:     d.OccurredAt,
		ProcessedAt:    d.ProcessedAt,
	}
}

func ToDomainPixWebhookEvent(m models.PixWebhookEvent) *domain.PixWebhookEvent {
	return &domain.PixWebhookEvent{
		WebhookEventID: m.WebhookEventID,
		EventID:        m.EventID,
		EndToEndID:     m.EndToEndID,
		EventType:      domain.PixWebhookEventType(m.EventType),
		OccurredAt:     m.OccurredAt,
		ProcessedAt:    m.ProcessedAt,
	}
}

func ToModelPixKey(d *domain.PixKey) models.PixKey {
	return models.PixKey{
		PixKeyID: d.PixKeyID,
		WalletID: d.WalletID,
		KeyType:  string(d.KeyType),
		KeyValue: d.KeyValue,
	}
}

func ToDomainPixKey(m models.PixKey) domain.PixKey {
	return domain.PixKey{
		PixKeyID: m.PixKeyID,
		WalletID: m.WalletID,
		KeyType:  domain.PixKeyType(m.KeyType),
		KeyValue: m.KeyValue,
	}
}
