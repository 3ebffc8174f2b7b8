package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/psanashik/academy/internal/app/models"
	"github.com/psanashik/academy/internal/pkg/apperrors"
	"github.com/psanashik/academy/internal/pkg/dberrors"
)

type sportRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSportRepository creates a new sport repository
func NewSportRepository(db *pgxpool.Pool) SportRepository {
	return &sportRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const sportColumns = `id, name, description, fee_structure, is_active, created_at, updated_at`

func scanSport(row pgx.Row) (*models.Sport, error) {
	var sport models.Sport
	err := row.Scan(
		&sport.ID,
		&sport.Name,
		&sport.Description,
		&sport.FeeStructure,
		&sport.IsActive,
		&sport.CreatedAt,
		&sport.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &sport, nil
}

// Create stores a new sport
func (r *sportRepository) Create(ctx context.Context, sport *models.Sport) error {
	query := `
		INSERT INTO sports (name, description, fee_structure, is_active)
		VALUES ($1, $2, $3, true)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		sport.Name, sport.Description, sport.FeeStructure,
	).Scan(&sport.ID, &sport.CreatedAt, &sport.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "sports_name_key") {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("error creating sport: %w", err)
	}
	sport.IsActive = true
	return nil
}

// GetByID retrieves a sport by ID
func (r *sportRepository) GetByID(ctx context.Context, id int64) (*models.Sport, error) {
	query := fmt.Sprintf(`SELECT %s FROM sports WHERE id = $1`, sportColumns)

	sport, err := scanSport(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSportNotFound
		}
		return nil, fmt.Errorf("error retrieving sport: %w", err)
	}
	return sport, nil
}

// List retrieves sports, optionally including inactive ones
func (r *sportRepository) List(ctx context.Context, includeInactive bool) ([]*models.Sport, error) {
	builder := r.sb.Select(sportColumns).From("sports").OrderBy("name")
	if !includeInactive {
		builder = builder.Where(squirrel.Eq{"is_active": true})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sport list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing sports: %w", err)
	}
	defer rows.Close()

	var sports []*models.Sport
	for rows.Next() {
		sport, err := scanSport(rows)
		if err != nil {
			return nil, err
		}
		sports = append(sports, sport)
	}
	return sports, rows.Err()
}

// Update replaces a sport's mutable fields
func (r *sportRepository) Update(ctx context.Context, sport *models.Sport) error {
	query := `
		UPDATE sports
		SET name = $1, description = $2, fee_structure = $3, updated_at = now()
		WHERE id = $4
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		sport.Name, sport.Description, sport.FeeStructure, sport.ID,
	).Scan(&sport.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrSportNotFound
		}
		if dberrors.IsDuplicateConstraintError(err, "sports_name_key") {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("error updating sport: %w", err)
	}
	return nil
}

// Deactivate soft-deletes a sport
func (r *sportRepository) Deactivate(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE sports SET is_active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deactivating sport: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSportNotFound
	}
	return nil
}
