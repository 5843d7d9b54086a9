package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/pix_wallet/internal/core/domain"
	portsrepo "github.com/SscSPs/pix_wallet/internal/core/ports/repositories"
	"github.com/SscSPs/pix_wallet/internal/models"
	"github.com/SscSPs/pix_wallet/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const webhookColumns = `webhook_event_id, event_id, end_to_end_id, event_type, occurred_at, processed_at`

type PgxPixWebhookEventRepository struct {
	BaseRepository
}

func newPgxPixWebhookEventRepository(db DBTX) *PgxPixWebhookEventRepository {
	return &PgxPixWebhookEventRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

var _ portsrepo.PixWebhookEventRepository = (*PgxPixWebhookEventRepository)(nil)

func (r *PgxPixWebhookEventRepository) Save(ctx context.Context, event *domain.PixWebhookEvent) (*domain.PixWebhookEvent, error) {
	m := mapping.ToModelPixWebhookEvent(event)
	query := `
		INSERT INTO pix_webhook_events (` + webhookColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + webhookColumns + `;`

	rows, err := r.DB.Query(ctx, query,
		m.WebhookEventID,
		m.EventID,
		m.EndToEndID,
		m.EventType,
		m.OccurredAt,
		m.ProcessedAt,
	)
	if err != nil {
		return nil, mapPgError(err, "failed to save webhook event "+m.EventID)
	}
	saved, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.PixWebhookEvent])
	if err != nil {
		return nil, mapPgError(err, "failed to save webhook event "+m.EventID)
	}
	return mapping.ToDomainPixWebhookEvent(saved), nil
}

// FindByEventID returns nil when the event has not been recorded.
func (r *PgxPixWebhookEventRepository) FindByEventID(ctx context.Context, eventID string) (*domain.PixWebhookEvent, error) {
	query := `SELECT ` + webhookColumns + ` FROM pix_webhook_events WHERE event_id = $1;`
	rows, err := r.DB.Query(ctx, query, eventID)
	if err != nil {
		return nil, mapPgError(err, "failed to query webhook event "+eventID)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.PixWebhookEvent])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapPgError(err, "failed to read webhook event "+eventID)
	}
	return mapping.ToDomainPixWebhookEvent(m), nil
}

func (r *PgxPixWebhookEventRepository) ExistsByEventID(ctx context.Context, eventID string) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM pix_webhook_events WHERE event_id = $1);`, eventID).Scan(&exists)
	if err != nil {
		return false, mapPgError(err, "failed to check webhook event "+eventID)
	}
	return exists, nil
}
