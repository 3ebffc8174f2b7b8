package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/psanashik/academy/internal/app/models"
	"github.com/psanashik/academy/internal/db"
	"github.com/psanashik/academy/internal/pkg/apperrors"
	"github.com/psanashik/academy/internal/pkg/dberrors"
)

// studentRepository is the PostgreSQL-backed StudentRepository. Capacity
// bookkeeping runs inside the same transaction as the student mutation:
// the batch row is locked with FOR UPDATE so concurrent enrollments cannot
// oversubscribe a batch or desynchronize the counter.
type studentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) StudentRepository {
	return &studentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const studentColumns = `id, user_id, student_id, name, phone, email, date_of_birth, address, emergency_contact, medical_notes, sport_id, batch_id, skill_level, joining_date, is_active, created_at`

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.ID,
		&student.UserID,
		&student.StudentID,
		&student.Name,
		&student.Phone,
		&student.Email,
		&student.DateOfBirth,
		&student.Address,
		&student.EmergencyContact,
		&student.MedicalNotes,
		&student.SportID,
		&student.BatchID,
		&student.SkillLevel,
		&student.JoiningDate,
		&student.IsActive,
		&student.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// lockBatchForEnrollment locks the batch row and verifies it can take one
// more active student.
func lockBatchForEnrollment(ctx context.Context, tx pgx.Tx, batchID int64) error {
	var current, max int
	var isActive bool
	err := tx.QueryRow(ctx,
		`SELECT current_capacity, max_capacity, is_active FROM batches WHERE id = $1 FOR UPDATE`,
		batchID).Scan(&current, &max, &isActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrBatchNotFound
		}
		return fmt.Errorf("error locking batch %d: %w", batchID, err)
	}
	if !isActive {
		return apperrors.ErrBatchNotFound
	}
	if current >= max {
		return apperrors.ErrBatchCapacityExceeded
	}
	return nil
}

func adjustBatchCapacity(ctx context.Context, tx pgx.Tx, batchID int64, delta int) error {
	cmdTag, err := tx.Exec(ctx,
		`UPDATE batches SET current_capacity = current_capacity + $1 WHERE id = $2`,
		delta, batchID)
	if err != nil {
		return fmt.Errorf("error adjusting batch %d capacity: %w", batchID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBatchNotFound
	}
	return nil
}

// Create enrolls a new student, incrementing the target batch's capacity
// counter in the same transaction. Fails without side effects when the
// batch is full or the student ID is already taken.
func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if err := lockBatchForEnrollment(ctx, tx, student.BatchID); err != nil {
			return err
		}

		query := `
			INSERT INTO students (user_id, student_id, name, phone, email, date_of_birth, address,
				emergency_contact, medical_notes, sport_id, batch_id, skill_level, joining_date, is_active)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, true)
			RETURNING id, joining_date, created_at
		`
		err := tx.QueryRow(ctx, query,
			student.UserID, student.StudentID, student.Name, student.Phone, student.Email,
			student.DateOfBirth, student.Address, student.EmergencyContact, student.MedicalNotes,
			student.SportID, student.BatchID, student.SkillLevel, student.JoiningDate,
		).Scan(&student.ID, &student.JoiningDate, &student.CreatedAt)
		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, "students_student_id_key") {
				return apperrors.ErrStudentIDAlreadyExists
			}
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrSportNotFound
			}
			return fmt.Errorf("error creating student: %w", err)
		}

		if err := adjustBatchCapacity(ctx, tx, student.BatchID, 1); err != nil {
			return err
		}

		student.IsActive = true
		return nil
	})
}

// GetByID retrieves a student by ID
func (r *studentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM students WHERE id = $1`, studentColumns)

	student, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}

// GetByStudentID retrieves a student by the external STU### identifier
func (r *studentRepository) GetByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM students WHERE student_id = $1`, studentColumns)

	student, err := scanStudent(r.db.QueryRow(ctx, query, studentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}

// List retrieves students matching the filter
func (r *studentRepository) List(ctx context.Context, filter StudentFilter) ([]*models.Student, error) {
	builder := r.sb.Select(studentColumns).From("students").OrderBy("id")

	if !filter.IncludeInactive {
		builder = builder.Where(squirrel.Eq{"is_active": true})
	}
	if filter.SportID > 0 {
		builder = builder.Where(squirrel.Eq{"sport_id": filter.SportID})
	}
	if filter.BatchID > 0 {
		builder = builder.Where(squirrel.Eq{"batch_id": filter.BatchID})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"student_id": pattern},
			squirrel.ILike{"phone": pattern},
		})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build student list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	return students, rows.Err()
}

// Update replaces a student's mutable fields. Batch changes go through
// Transfer, not here.
func (r *studentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET name = $1, phone = $2, email = $3, address = $4, emergency_contact = $5,
			medical_notes = $6, skill_level = $7
		WHERE id = $8
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.Name, student.Phone, student.Email, student.Address,
		student.EmergencyContact, student.MedicalNotes, student.SkillLevel, student.ID)
	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// Transfer moves an active student to another batch, decrementing the old
// batch's counter and incrementing the new one in a single transaction.
// Both batch rows are locked in ascending ID order to avoid deadlocks.
func (r *studentRepository) Transfer(ctx context.Context, id, toBatchID int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var fromBatchID int64
		var isActive bool
		err := tx.QueryRow(ctx,
			`SELECT batch_id, is_active FROM students WHERE id = $1 FOR UPDATE`,
			id).Scan(&fromBatchID, &isActive)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrStudentNotFound
			}
			return fmt.Errorf("error locking student %d: %w", id, err)
		}
		if !isActive {
			return apperrors.ErrStudentNotFound
		}
		if fromBatchID == toBatchID {
			return nil
		}

		first, second := fromBatchID, toBatchID
		if second < first {
			first, second = second, first
		}
		for _, batchID := range []int64{first, second} {
			if batchID == toBatchID {
				if err := lockBatchForEnrollment(ctx, tx, batchID); err != nil {
					return err
				}
			} else {
				if _, err := tx.Exec(ctx, `SELECT id FROM batches WHERE id = $1 FOR UPDATE`, batchID); err != nil {
					return fmt.Errorf("error locking batch %d: %w", batchID, err)
				}
			}
		}

		if _, err := tx.Exec(ctx, `UPDATE students SET batch_id = $1 WHERE id = $2`, toBatchID, id); err != nil {
			return fmt.Errorf("error transferring student: %w", err)
		}
		if err := adjustBatchCapacity(ctx, tx, fromBatchID, -1); err != nil {
			return err
		}
		return adjustBatchCapacity(ctx, tx, toBatchID, 1)
	})
}

// Deactivate soft-deletes a student and releases their batch slot.
// Deactivating an already inactive student is a no-op for the counter.
func (r *studentRepository) Deactivate(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var batchID int64
		var isActive bool
		err := tx.QueryRow(ctx,
			`SELECT batch_id, is_active FROM students WHERE id = $1 FOR UPDATE`,
			id).Scan(&batchID, &isActive)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrStudentNotFound
			}
			return fmt.Errorf("error locking student %d: %w", id, err)
		}
		if !isActive {
			return nil
		}

		if _, err := tx.Exec(ctx, `SELECT id FROM batches WHERE id = $1 FOR UPDATE`, batchID); err != nil {
			return fmt.Errorf("error locking batch %d: %w", batchID, err)
		}
		if _, err := tx.Exec(ctx, `UPDATE students SET is_active = false WHERE id = $1`, id); err != nil {
			return fmt.Errorf("error deactivating student: %w", err)
		}
		return adjustBatchCapacity(ctx, tx, batchID, -1)
	})
}

// CountActiveByBatch counts the active students assigned to a batch.
func (r *studentRepository) CountActiveByBatch(ctx context.Context, batchID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM students WHERE batch_id = $1 AND is_active`, batchID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting batch students: %w", err)
	}
	return count, nil
}
