package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/psanashik/academy/internal/app/models"
	"github.com/psanashik/academy/internal/pkg/apperrors"
)

type communicationRepository struct {
	db *pgxpool.Pool
}

// NewCommunicationRepository creates a new communication repository
func NewCommunicationRepository(db *pgxpool.Pool) CommunicationRepository {
	return &communicationRepository{db: db}
}

const communicationColumns = `id, type, recipient_type, recipient_ids, subject, message, status, scheduled_at, sent_at, created_by, created_at`

func scanCommunication(row pgx.Row) (*models.Communication, error) {
	var comm models.Communication
	err := row.Scan(
		&comm.ID,
		&comm.Type,
		&comm.RecipientType,
		&comm.RecipientIDs,
		&comm.Subject,
		&comm.Message,
		&comm.Status,
		&comm.ScheduledAt,
		&comm.SentAt,
		&comm.CreatedBy,
		&comm.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &comm, nil
}

// Create stores a new outbound communication
func (r *communicationRepository) Create(ctx context.Context, comm *models.Communication) error {
	query := `
		INSERT INTO communications (type, recipient_type, recipient_ids, subject, message, status, scheduled_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		comm.Type, comm.RecipientType, comm.RecipientIDs, comm.Subject,
		comm.Message, comm.Status, comm.ScheduledAt, comm.CreatedBy,
	).Scan(&comm.ID, &comm.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating communication: %w", err)
	}
	return nil
}

// GetByID retrieves a communication by ID
func (r *communicationRepository) GetByID(ctx context.Context, id int64) (*models.Communication, error) {
	query := fmt.Sprintf(`SELECT %s FROM communications WHERE id = $1`, communicationColumns)

	comm, err := scanCommunication(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCommunicationNotFound
		}
		return nil, fmt.Errorf("error retrieving communication: %w", err)
	}
	return comm, nil
}

// List retrieves all communications, newest first
func (r *communicationRepository) List(ctx context.Context) ([]*models.Communication, error) {
	query := fmt.Sprintf(`SELECT %s FROM communications ORDER BY created_at DESC, id DESC`, communicationColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing communications: %w", err)
	}
	defer rows.Close()

	var comms []*models.Communication
	for rows.Next() {
		comm, err := scanCommunication(rows)
		if err != nil {
			return nil, err
		}
		comms = append(comms, comm)
	}
	return comms, rows.Err()
}

// UpdateStatus records a status change, stamping sent_at when provided.
// Transition legality is checked by the service before this is called.
func (r *communicationRepository) UpdateStatus(ctx context.Context, id int64, status models.CommunicationStatus, sentAt *time.Time) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE communications SET status = $1, sent_at = COALESCE($2, sent_at) WHERE id = $3`,
		status, sentAt, id)
	if err != nil {
		return fmt.Errorf("error updating communication status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCommunicationNotFound
	}
	return nil
}
