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

type attendanceRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *pgxpool.Pool) AttendanceRepository {
	return &attendanceRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const attendanceColumns = `id, student_id, batch_id, date, status, check_in_time, check_out_time, notes, marked_by, created_at`

func scanAttendance(row pgx.Row) (*models.Attendance, error) {
	var record models.Attendance
	err := row.Scan(
		&record.ID,
		&record.StudentID,
		&record.BatchID,
		&record.Date,
		&record.Status,
		&record.CheckInTime,
		&record.CheckOutTime,
		&record.Notes,
		&record.MarkedBy,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Create stores a new attendance record. One record is allowed per
// (student, batch, date); duplicates map to ErrAttendanceAlreadyMarked.
func (r *attendanceRepository) Create(ctx context.Context, record *models.Attendance) error {
	query := `
		INSERT INTO attendance (student_id, batch_id, date, status, check_in_time, check_out_time, notes, marked_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		record.StudentID, record.BatchID, record.Date, record.Status,
		record.CheckInTime, record.CheckOutTime, record.Notes, record.MarkedBy,
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "attendance_student_batch_date_key") {
			return apperrors.ErrAttendanceAlreadyMarked
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error creating attendance record: %w", err)
	}
	return nil
}

// GetByID retrieves an attendance record by ID
func (r *attendanceRepository) GetByID(ctx context.Context, id int64) (*models.Attendance, error) {
	query := fmt.Sprintf(`SELECT %s FROM attendance WHERE id = $1`, attendanceColumns)

	record, err := scanAttendance(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("error retrieving attendance record: %w", err)
	}
	return record, nil
}

// List retrieves attendance records matching the filter
func (r *attendanceRepository) List(ctx context.Context, filter AttendanceFilter) ([]*models.Attendance, error) {
	builder := r.sb.Select(attendanceColumns).From("attendance").OrderBy("date", "id")

	if filter.Date != nil {
		builder = builder.Where(squirrel.Eq{"date": *filter.Date})
	}
	if filter.From != nil {
		builder = builder.Where(squirrel.GtOrEq{"date": *filter.From})
	}
	if filter.To != nil {
		builder = builder.Where(squirrel.LtOrEq{"date": *filter.To})
	}
	if filter.BatchID > 0 {
		builder = builder.Where(squirrel.Eq{"batch_id": filter.BatchID})
	}
	if filter.StudentID > 0 {
		builder = builder.Where(squirrel.Eq{"student_id": filter.StudentID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build attendance list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing attendance records: %w", err)
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		record, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Update replaces an attendance record's status and times
func (r *attendanceRepository) Update(ctx context.Context, record *models.Attendance) error {
	query := `
		UPDATE attendance
		SET status = $1, check_in_time = $2, check_out_time = $3, notes = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		record.Status, record.CheckInTime, record.CheckOutTime, record.Notes, record.ID)
	if err != nil {
		return fmt.Errorf("error updating attendance record: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAttendanceNotFound
	}
	return nil
}
