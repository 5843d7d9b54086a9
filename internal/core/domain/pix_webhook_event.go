package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/pix_wallet/internal/apperrors"
)

// PixWebhookEventType is the closed set of settlement notifications we accept.
type PixWebhookEventType string

const (
	WebhookCreditConfirmed PixWebhookEventType = "CREDIT_CONFIRMED"
	WebhookDebitConfirmed  PixWebhookEventType = "DEBIT_CONFIRMED"
	WebhookRefundProcessed PixWebhookEventType = "REFUND_PROCESSED"
)

// ParseWebhookEventType is case-insensitive. Unknown values fail with ErrValidation.
func ParseWebhookEventType(raw string) (PixWebhookEventType, error) {
	switch t := PixWebhookEventType(strings.ToUpper(strings.TrimSpace(raw))); t {
	case WebhookCreditConfirmed, WebhookDebitConfirmed, WebhookRefundProcessed:
		return t, nil
	default:
		return "", apperrors.NewValidationError([]apperrors.Violation{{
			Field:   "eventType",
			Message: fmt.Sprintf("Invalid webhook event type: '%s'", raw),
		}})
	}
}

// PixWebhookEvent is a settlement notification, stored once per external EventID.
type PixWebhookEvent struct {
	WebhookEventID string              `json:"webhookEventId"`
	EventID        string              `json:"eventId"`
	EndToEndID     string              `json:"endToEndId"`
	EventType      PixWebhookEventType `json:"eventType"`
	OccurredAt     time.Time           `json:"occurredAt"`
	ProcessedAt    time.Time           `json:"processedAt"`
}

// NewPixWebhookEvent stamps ProcessedAt with the current time.
func NewPixWebhookEvent(eventType PixWebhookEventType, eventID, endToEndID string, occurredAt time.Time) *PixWebhookEvent {
	return &PixWebhookEvent{
		WebhookEventID: newID(),
		EventID:        eventID,
		EndToEndID:     endToEndID,
		EventType:      eventType,
		OccurredAt:     occurredAt,
		ProcessedAt:    now(),
	}
}

func (e *PixWebhookEvent) Validate() []apperrors.Violation {
	var violations []apperrors.Violation
	if isBlank(e.EventID) {
		violations = append(violations, apperrors.Violation{Field: "eventId", Message: "'eventId' must not be null or blank"})
	}
	if isBlank(e.EndToEndID) {
		violations = append(violations, apperrors.Violation{Field: "endToEndId", Message: "'endToEndId' must not be null or blank"})
	}
	if e.EventType == "" {
		violations = append(violations, apperrors.Violation{Field: "eventType", Message: "'type' must not be null"})
	}
	if e.OccurredAt.IsZero() {
		violations = append(violations, apperrors.Violation{Field: "occurredAt", Message: "'occurredAt' must not be null"})
	}
	if e.ProcessedAt.IsZero() {
		violations = append(violations, apperrors.Violation{Field: "processedAt", Message: "'processedAt' must not be null"})
	}
	return violations
}
