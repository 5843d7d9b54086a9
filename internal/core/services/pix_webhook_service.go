package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/pix_wallet/internal/apperrors"
	"github.com/SscSPs/pix_wallet/internal/core/domain"
	portsrepo "github.com/SscSPs/pix_wallet/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pix_wallet/internal/core/ports/services"
	"github.com/SscSPs/pix_wallet/internal/metrics"
)

// invalidEventTypeLabel keeps the metric label set closed when the sender
// posts an unknown type.
const invalidEventTypeLabel = "INVALID"

type pixWebhookService struct {
	BaseService
	webhookRepo  portsrepo.PixWebhookEventRepository
	transferRepo portsrepo.PixTransferRepository
}

func NewPixWebhookService(webhookRepo portsrepo.PixWebhookEventRepository, transferRepo portsrepo.PixTransferRepository) portssvc.PixWebhookSvcFacade {
	return &pixWebhookService{
		webhookRepo:  webhookRepo,
		transferRepo: transferRepo,
	}
}

var _ portssvc.PixWebhookSvcFacade = (*pixWebhookService)(nil)

// HandleEvent stores a settlement notification once per event id. Replays get the
// stored event back, so the sender can retry as often as it likes.
func (s *pixWebhookService) HandleEvent(ctx context.Context, cmd portssvc.HandleWebhookCommand) (*domain.PixWebhookEvent, error) {
	logAttrs := []any{
		slog.String("event_id", cmd.EventID),
		slog.String("end_to_end_id", cmd.EndToEndID),
		slog.String("event_type", cmd.EventType),
	}

	existing, err := s.webhookRepo.FindByEventID(ctx, cmd.EventID)
	if err != nil {
		return nil, s.fail(ctx, cmd, err, logAttrs)
	}
	if existing != nil {
		metrics.RecordWebhookEvent(string(existing.EventType), metrics.WebhookStatusDuplicate)
		s.LogInfo(ctx, "Webhook event already processed", logAttrs...)
		return existing, nil
	}

	transfer, err := s.transferRepo.FindByCorrelationID(ctx, cmd.EndToEndID)
	if err != nil {
		return nil, s.fail(ctx, cmd, err, logAttrs)
	}
	if transfer == nil {
		notFound := apperrors.NewNotFoundError("endToEndId",
			fmt.Sprintf("No Pix transfer found for endToEndId '%s'", cmd.EndToEndID))
		return nil, s.fail(ctx, cmd, notFound, logAttrs)
	}

	eventType, err := domain.ParseWebhookEventType(cmd.EventType)
	if err != nil {
		return nil, s.fail(ctx, cmd, err, logAttrs)
	}

	event := domain.NewPixWebhookEvent(eventType, cmd.EventID, cmd.EndToEndID, cmd.OccurredAt)
	if err := apperrors.NewValidationError(event.Validate()); err != nil {
		return nil, s.fail(ctx, cmd, err, logAttrs)
	}

	saved, err := s.webhookRepo.Save(ctx, event)
	if errors.Is(err, apperrors.ErrDuplicate) {
		// Lost the race against a concurrent delivery of the same event.
		stored, findErr := s.webhookRepo.FindByEventID(ctx, cmd.EventID)
		if findErr == nil && stored != nil {
			metrics.RecordWebhookEvent(string(stored.EventType), metrics.WebhookStatusDuplicate)
			return stored, nil
		}
	}
	if err != nil {
		return nil, s.fail(ctx, cmd, err, logAttrs)
	}

	metrics.RecordWebhookEvent(string(saved.EventType), metrics.WebhookStatusStored)
	s.LogInfo(ctx, "Webhook event stored", append(logAttrs, slog.String("transfer_id", transfer.TransferID))...)
	return saved, nil
}

func (s *pixWebhookService) fail(ctx context.Context, cmd portssvc.HandleWebhookCommand, err error, logAttrs []any) error {
	label := invalidEventTypeLabel
	if eventType, parseErr := domain.ParseWebhookEventType(cmd.EventType); parseErr == nil {
		label = string(eventType)
	}
	metrics.RecordWebhookEvent(label, metrics.WebhookStatusError)
	s.logFailure(ctx, err, "Failed to handle webhook event", logAttrs...)
	return err
}
