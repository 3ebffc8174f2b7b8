package inmem

import (
	"context"
	"time"

	"github.com/psanashik/academy/internal/app/models"
	"github.com/psanashik/academy/internal/app/repositories"
	"github.com/psanashik/academy/internal/pkg/apperrors"
)

type attendanceRepository struct {
	s *Store
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func (r *attendanceRepository) Create(ctx context.Context, record *models.Attendance) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.students[record.StudentID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	for _, existing := range r.s.attendance {
		if existing.StudentID == record.StudentID &&
			existing.BatchID == record.BatchID &&
			sameDay(existing.Date, record.Date) {
			return apperrors.ErrAttendanceAlreadyMarked
		}
	}

	record.ID = r.s.nextID()
	record.CreatedAt = time.Now()
	clone := *record
	r.s.attendance[record.ID] = &clone
	return nil
}

func (r *attendanceRepository) GetByID(ctx context.Context, id int64) (*models.Attendance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	record, ok := r.s.attendance[id]
	if !ok {
		return nil, apperrors.ErrAttendanceNotFound
	}
	clone := *record
	return &clone, nil
}

func (r *attendanceRepository) List(ctx context.Context, filter repositories.AttendanceFilter) ([]*models.Attendance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var records []*models.Attendance
	for _, record := range r.s.attendance {
		if filter.Date != nil && !sameDay(record.Date, *filter.Date) {
			continue
		}
		if filter.From != nil && record.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && record.Date.After(*filter.To) {
			continue
		}
		if filter.BatchID > 0 && record.BatchID != filter.BatchID {
			continue
		}
		if filter.StudentID > 0 && record.StudentID != filter.StudentID {
			continue
		}
		clone := *record
		records = append(records, &clone)
	}
	sortByID(records, func(a *models.Attendance) int64 { return a.ID })
	return records, nil
}

func (r *attendanceRepository) Update(ctx context.Context, record *models.Attendance) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.attendance[record.ID]
	if !ok {
		return apperrors.ErrAttendanceNotFound
	}
	existing.Status = record.Status
	existing.CheckInTime = record.CheckInTime
	existing.CheckOutTime = record.CheckOutTime
	existing.Notes = record.Notes
	return nil
}
