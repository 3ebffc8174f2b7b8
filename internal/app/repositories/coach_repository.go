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
)

type coachRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCoachRepository creates a new coach repository
func NewCoachRepository(db *pgxpool.Pool) CoachRepository {
	return &coachRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const coachColumns = `id, name, email, phone, specialization, experience, qualifications, is_active, created_at, updated_at`

func scanCoach(row pgx.Row) (*models.Coach, error) {
	var coach models.Coach
	err := row.Scan(
		&coach.ID,
		&coach.Name,
		&coach.Email,
		&coach.Phone,
		&coach.Specialization,
		&coach.Experience,
		&coach.Qualifications,
		&coach.IsActive,
		&coach.CreatedAt,
		&coach.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &coach, nil
}

// Create stores a new coach
func (r *coachRepository) Create(ctx context.Context, coach *models.Coach) error {
	query := `
		INSERT INTO coaches (name, email, phone, specialization, experience, qualifications, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, true)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		coach.Name, coach.Email, coach.Phone, coach.Specialization,
		coach.Experience, coach.Qualifications,
	).Scan(&coach.ID, &coach.CreatedAt, &coach.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating coach: %w", err)
	}
	coach.IsActive = true
	return nil
}

// GetByID retrieves a coach by ID
func (r *coachRepository) GetByID(ctx context.Context, id int64) (*models.Coach, error) {
	query := fmt.Sprintf(`SELECT %s FROM coaches WHERE id = $1`, coachColumns)

	coach, err := scanCoach(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCoachNotFound
		}
		return nil, fmt.Errorf("error retrieving coach: %w", err)
	}
	return coach, nil
}

// List retrieves coaches, optionally including inactive ones
func (r *coachRepository) List(ctx context.Context, includeInactive bool) ([]*models.Coach, error) {
	builder := r.sb.Select(coachColumns).From("coaches").OrderBy("name")
	if !includeInactive {
		builder = builder.Where(squirrel.Eq{"is_active": true})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build coach list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing coaches: %w", err)
	}
	defer rows.Close()

	var coaches []*models.Coach
	for rows.Next() {
		coach, err := scanCoach(rows)
		if err != nil {
			return nil, err
		}
		coaches = append(coaches, coach)
	}
	return coaches, rows.Err()
}

// Update replaces a coach's mutable fields
func (r *coachRepository) Update(ctx context.Context, coach *models.Coach) error {
	query := `
		UPDATE coaches
		SET name = $1, email = $2, phone = $3, specialization = $4, experience = $5,
			qualifications = $6, updated_at = now()
		WHERE id = $7
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		coach.Name, coach.Email, coach.Phone, coach.Specialization,
		coach.Experience, coach.Qualifications, coach.ID,
	).Scan(&coach.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrCoachNotFound
		}
		return fmt.Errorf("error updating coach: %w", err)
	}
	return nil
}

// Deactivate soft-deletes a coach
func (r *coachRepository) Deactivate(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE coaches SET is_active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deactivating coach: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCoachNotFound
	}
	return nil
}
