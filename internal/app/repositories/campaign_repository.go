package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/psanashik/academy/internal/app/models"
	"github.com/psanashik/academy/internal/pkg/apperrors"
)

type campaignRepository struct {
	db *pgxpool.Pool
}

// NewCampaignRepository creates a new campaign repository
func NewCampaignRepository(db *pgxpool.Pool) CampaignRepository {
	return &campaignRepository{db: db}
}

const campaignColumns = `id, name, description, type, target_audience, channels, content, status, start_date, end_date, metrics, created_by, created_at`

func scanCampaign(row pgx.Row) (*models.Campaign, error) {
	var campaign models.Campaign
	err := row.Scan(
		&campaign.ID,
		&campaign.Name,
		&campaign.Description,
		&campaign.Type,
		&campaign.TargetAudience,
		&campaign.Channels,
		&campaign.Content,
		&campaign.Status,
		&campaign.StartDate,
		&campaign.EndDate,
		&campaign.Metrics,
		&campaign.CreatedBy,
		&campaign.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

// Create stores a new campaign
func (r *campaignRepository) Create(ctx context.Context, campaign *models.Campaign) error {
	query := `
		INSERT INTO campaigns (name, description, type, target_audience, channels, content, status, start_date, end_date, metrics, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		campaign.Name, campaign.Description, campaign.Type, campaign.TargetAudience,
		campaign.Channels, campaign.Content, campaign.Status,
		campaign.StartDate, campaign.EndDate, campaign.Metrics, campaign.CreatedBy,
	).Scan(&campaign.ID, &campaign.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating campaign: %w", err)
	}
	return nil
}

// GetByID retrieves a campaign by ID
func (r *campaignRepository) GetByID(ctx context.Context, id int64) (*models.Campaign, error) {
	query := fmt.Sprintf(`SELECT %s FROM campaigns WHERE id = $1`, campaignColumns)

	campaign, err := scanCampaign(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCampaignNotFound
		}
		return nil, fmt.Errorf("error retrieving campaign: %w", err)
	}
	return campaign, nil
}

// List retrieves all campaigns, newest first
func (r *campaignRepository) List(ctx context.Context) ([]*models.Campaign, error) {
	query := fmt.Sprintf(`SELECT %s FROM campaigns ORDER BY created_at DESC, id DESC`, campaignColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing campaigns: %w", err)
	}
	defer rows.Close()

	var campaigns []*models.Campaign
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, campaign)
	}
	return campaigns, rows.Err()
}

// Update replaces a campaign's mutable fields, including status and metrics
func (r *campaignRepository) Update(ctx context.Context, campaign *models.Campaign) error {
	query := `
		UPDATE campaigns
		SET name = $1, description = $2, target_audience = $3, channels = $4, content = $5,
			status = $6, start_date = $7, end_date = $8, metrics = $9
		WHERE id = $10
	`

	cmdTag, err := r.db.Exec(ctx, query,
		campaign.Name, campaign.Description, campaign.TargetAudience, campaign.Channels,
		campaign.Content, campaign.Status, campaign.StartDate, campaign.EndDate,
		campaign.Metrics, campaign.ID)
	if err != nil {
		return fmt.Errorf("error updating campaign: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCampaignNotFound
	}
	return nil
}
