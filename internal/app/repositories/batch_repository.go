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

type batchRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewBatchRepository creates a new batch repository
func NewBatchRepository(db *pgxpool.Pool) BatchRepository {
	return &batchRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const batchColumns = `id, name, sport_id, coach_id, schedule, max_capacity, current_capacity, skill_level, is_active, created_at`

func scanBatch(row pgx.Row) (*models.Batch, error) {
	var batch models.Batch
	err := row.Scan(
		&batch.ID,
		&batch.Name,
		&batch.SportID,
		&batch.CoachID,
		&batch.Schedule,
		&batch.MaxCapacity,
		&batch.CurrentCapacity,
		&batch.SkillLevel,
		&batch.IsActive,
		&batch.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &batch, nil
}

// Create stores a new batch. New batches start empty.
func (r *batchRepository) Create(ctx context.Context, batch *models.Batch) error {
	query := `
		INSERT INTO batches (name, sport_id, coach_id, schedule, max_capacity, current_capacity, skill_level, is_active)
		VALUES ($1, $2, $3, $4, $5, 0, $6, true)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		batch.Name, batch.SportID, batch.CoachID, batch.Schedule,
		batch.MaxCapacity, batch.SkillLevel,
	).Scan(&batch.ID, &batch.CreatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrSportNotFound
		}
		return fmt.Errorf("error creating batch: %w", err)
	}
	batch.CurrentCapacity = 0
	batch.IsActive = true
	return nil
}

// GetByID retrieves a batch by ID
func (r *batchRepository) GetByID(ctx context.Context, id int64) (*models.Batch, error) {
	query := fmt.Sprintf(`SELECT %s FROM batches WHERE id = $1`, batchColumns)

	batch, err := scanBatch(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBatchNotFound
		}
		return nil, fmt.Errorf("error retrieving batch: %w", err)
	}
	return batch, nil
}

// List retrieves batches, optionally including inactive ones
func (r *batchRepository) List(ctx context.Context, includeInactive bool) ([]*models.Batch, error) {
	builder := r.sb.Select(batchColumns).From("batches").OrderBy("id")
	if !includeInactive {
		builder = builder.Where(squirrel.Eq{"is_active": true})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build batch list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing batches: %w", err)
	}
	defer rows.Close()

	var batches []*models.Batch
	for rows.Next() {
		batch, err := scanBatch(rows)
		if err != nil {
			return nil, err
		}
		batches = append(batches, batch)
	}
	return batches, rows.Err()
}

// Update replaces a batch's mutable fields. The capacity counter is not
// writable here; it only moves with student enrollment.
func (r *batchRepository) Update(ctx context.Context, batch *models.Batch) error {
	query := `
		UPDATE batches
		SET name = $1, coach_id = $2, schedule = $3, max_capacity = $4, skill_level = $5
		WHERE id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		batch.Name, batch.CoachID, batch.Schedule, batch.MaxCapacity, batch.SkillLevel, batch.ID)
	if err != nil {
		return fmt.Errorf("error updating batch: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBatchNotFound
	}
	return nil
}

// Deactivate soft-deletes a batch
func (r *batchRepository) Deactivate(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE batches SET is_active = false WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deactivating batch: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBatchNotFound
	}
	return nil
}

// RecomputeCapacities resets every batch counter from the students table.
func (r *batchRepository) RecomputeCapacities(ctx context.Context) error {
	query := `
		UPDATE batches b
		SET current_capacity = (
			SELECT count(*) FROM students s WHERE s.batch_id = b.id AND s.is_active
		)
	`
	if _, err := r.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("error recomputing batch capacities: %w", err)
	}
	return nil
}
