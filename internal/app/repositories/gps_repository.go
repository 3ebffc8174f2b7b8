package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/psanashik/academy/internal/app/models"
	"github.com/psanashik/academy/internal/pkg/apperrors"
	"github.com/psanashik/academy/internal/pkg/dberrors"
)

type gpsRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewGPSRepository creates a new GPS ping repository
func NewGPSRepository(db *pgxpool.Pool) GPSRepository {
	return &gpsRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create stores a location report
func (r *gpsRepository) Create(ctx context.Context, ping *models.GPSPing) error {
	query := `
		INSERT INTO gps_tracking (user_id, latitude, longitude, accuracy, timestamp, activity, location)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		ping.UserID, ping.Latitude, ping.Longitude, ping.Accuracy,
		ping.Timestamp, ping.Activity, ping.Location,
	).Scan(&ping.ID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error creating gps ping: %w", err)
	}
	return nil
}

// List retrieves location reports matching the filter, newest first
func (r *gpsRepository) List(ctx context.Context, filter GPSFilter) ([]*models.GPSPing, error) {
	builder := r.sb.
		Select("id", "user_id", "latitude", "longitude", "accuracy", "timestamp", "activity", "location").
		From("gps_tracking").
		OrderBy("timestamp DESC", "id DESC")

	if filter.UserID > 0 {
		builder = builder.Where(squirrel.Eq{"user_id": filter.UserID})
	}
	if filter.From != nil {
		builder = builder.Where(squirrel.GtOrEq{"timestamp": *filter.From})
	}
	if filter.To != nil {
		builder = builder.Where(squirrel.LtOrEq{"timestamp": *filter.To})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build gps list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing gps pings: %w", err)
	}
	defer rows.Close()

	var pings []*models.GPSPing
	for rows.Next() {
		var ping models.GPSPing
		err := rows.Scan(
			&ping.ID, &ping.UserID, &ping.Latitude, &ping.Longitude,
			&ping.Accuracy, &ping.Timestamp, &ping.Activity, &ping.Location,
		)
		if err != nil {
			return nil, err
		}
		pings = append(pings, &ping)
	}
	return pings, rows.Err()
}
