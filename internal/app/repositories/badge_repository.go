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

type badgeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewBadgeRepository creates a new badge repository
func NewBadgeRepository(db *pgxpool.Pool) BadgeRepository {
	return &badgeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const badgeColumns = `id, name, description, icon, criteria, points, is_active, created_at`

func scanBadge(row pgx.Row) (*models.StudentBadge, error) {
	var badge models.StudentBadge
	err := row.Scan(
		&badge.ID,
		&badge.Name,
		&badge.Description,
		&badge.Icon,
		&badge.Criteria,
		&badge.Points,
		&badge.IsActive,
		&badge.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &badge, nil
}

// Create stores a new badge definition
func (r *badgeRepository) Create(ctx context.Context, badge *models.StudentBadge) error {
	query := `
		INSERT INTO student_badges (name, description, icon, criteria, points, is_active)
		VALUES ($1, $2, $3, $4, $5, true)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		badge.Name, badge.Description, badge.Icon, badge.Criteria, badge.Points,
	).Scan(&badge.ID, &badge.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating badge: %w", err)
	}
	badge.IsActive = true
	return nil
}

// GetByID retrieves a badge definition by ID
func (r *badgeRepository) GetByID(ctx context.Context, id int64) (*models.StudentBadge, error) {
	query := fmt.Sprintf(`SELECT %s FROM student_badges WHERE id = $1`, badgeColumns)

	badge, err := scanBadge(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBadgeNotFound
		}
		return nil, fmt.Errorf("error retrieving badge: %w", err)
	}
	return badge, nil
}

// List retrieves badge definitions, optionally including inactive ones
func (r *badgeRepository) List(ctx context.Context, includeInactive bool) ([]*models.StudentBadge, error) {
	builder := r.sb.Select(badgeColumns).From("student_badges").OrderBy("id")
	if !includeInactive {
		builder = builder.Where(squirrel.Eq{"is_active": true})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build badge list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing badges: %w", err)
	}
	defer rows.Close()

	var badges []*models.StudentBadge
	for rows.Next() {
		badge, err := scanBadge(rows)
		if err != nil {
			return nil, err
		}
		badges = append(badges, badge)
	}
	return badges, rows.Err()
}

// Update replaces a badge definition's mutable fields
func (r *badgeRepository) Update(ctx context.Context, badge *models.StudentBadge) error {
	query := `
		UPDATE student_badges
		SET name = $1, description = $2, icon = $3, criteria = $4, points = $5, is_active = $6
		WHERE id = $7
	`

	cmdTag, err := r.db.Exec(ctx, query,
		badge.Name, badge.Description, badge.Icon, badge.Criteria,
		badge.Points, badge.IsActive, badge.ID)
	if err != nil {
		return fmt.Errorf("error updating badge: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBadgeNotFound
	}
	return nil
}

// Award records a badge earned by a student. A student earns each badge at
// most once.
func (r *badgeRepository) Award(ctx context.Context, earning *models.BadgeEarning) error {
	query := `
		INSERT INTO student_badge_earnings (student_id, badge_id, earned_at, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		earning.StudentID, earning.BadgeID, earning.EarnedAt, earning.Notes,
	).Scan(&earning.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "student_badge_earnings_student_badge_key") {
			return apperrors.ErrBadgeAlreadyEarned
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrBadgeNotFound
		}
		return fmt.Errorf("error awarding badge: %w", err)
	}
	return nil
}

// ListEarnings retrieves the badges a student has earned, with the badge
// definitions attached.
func (r *badgeRepository) ListEarnings(ctx context.Context, studentID int64) ([]*models.BadgeEarning, error) {
	query := `
		SELECT e.id, e.student_id, e.badge_id, e.earned_at, e.notes,
			b.id, b.name, b.description, b.icon, b.criteria, b.points, b.is_active, b.created_at
		FROM student_badge_earnings e
		JOIN student_badges b ON b.id = e.badge_id
		WHERE e.student_id = $1
		ORDER BY e.earned_at DESC, e.id DESC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing badge earnings: %w", err)
	}
	defer rows.Close()

	var earnings []*models.BadgeEarning
	for rows.Next() {
		var earning models.BadgeEarning
		var badge models.StudentBadge
		err := rows.Scan(
			&earning.ID, &earning.StudentID, &earning.BadgeID, &earning.EarnedAt, &earning.Notes,
			&badge.ID, &badge.Name, &badge.Description, &badge.Icon, &badge.Criteria,
			&badge.Points, &badge.IsActive, &badge.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		earning.Badge = &badge
		earnings = append(earnings, &earning)
	}
	return earnings, rows.Err()
}
