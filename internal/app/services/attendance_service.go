package services

import (
	"context"

	"github.com/psanashik/academy/internal/app/aggregate"
	"github.com/psanashik/academy/internal/app/models"
	"github.com/psanashik/academy/internal/app/models/dto"
	"github.com/psanashik/academy/internal/app/repositories"
	"github.com/psanashik/academy/internal/pkg/apperrors"
	"github.com/psanashik/academy/internal/pkg/helpers"
)

// AttendanceService handles attendance marking and rate computation.
type AttendanceService interface {
	MarkAttendance(ctx context.Context, req *dto.MarkAttendanceRequest, markedBy *int64) (*models.Attendance, error)
	GetRecord(ctx context.Context, id int64) (*models.Attendance, error)
	ListAttendance(ctx context.Context, filter repositories.AttendanceFilter) ([]*models.Attendance, aggregate.AttendanceSummary, error)
	UpdateRecord(ctx context.Context, id int64, req *dto.UpdateAttendanceRequest) (*models.Attendance, error)
}

type attendanceService struct {
	attendanceRepo repositories.AttendanceRepository
	studentRepo    repositories.StudentRepository
	batchRepo      repositories.BatchRepository
	policy         aggregate.AttendancePolicy
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(attendanceRepo repositories.AttendanceRepository, studentRepo repositories.StudentRepository, batchRepo repositories.BatchRepository, policy aggregate.AttendancePolicy) AttendanceService {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		studentRepo:    studentRepo,
		batchRepo:      batchRepo,
		policy:         policy,
	}
}

// MarkAttendance records one attendance mark for a student on a date.
// Marking the same (student, batch, date) twice fails with a conflict;
// corrections go through UpdateRecord.
func (s *attendanceService) MarkAttendance(ctx context.Context, req *dto.MarkAttendanceRequest, markedBy *int64) (*models.Attendance, error) {
	student, err := s.studentRepo.GetByID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}
	if student.BatchID != req.BatchID {
		return nil, apperrors.NewValidationError("student is not enrolled in this batch")
	}
	if _, err := s.batchRepo.GetByID(ctx, req.BatchID); err != nil {
		return nil, err
	}

	record := &models.Attendance{
		StudentID:   req.StudentID,
		BatchID:     req.BatchID,
		Date:        helpers.StartOfDay(req.Date),
		Status:      models.AttendanceStatus(req.Status),
		CheckInTime: req.CheckInTime,
		Notes:       req.Notes,
		MarkedBy:    markedBy,
	}

	if err := s.attendanceRepo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// GetRecord retrieves an attendance record by ID
func (s *attendanceService) GetRecord(ctx context.Context, id int64) (*models.Attendance, error) {
	return s.attendanceRepo.GetByID(ctx, id)
}

// ListAttendance retrieves attendance records with the summary computed
// over the same filtered set.
func (s *attendanceService) ListAttendance(ctx context.Context, filter repositories.AttendanceFilter) ([]*models.Attendance, aggregate.AttendanceSummary, error) {
	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, aggregate.AttendanceSummary{}, err
	}
	return records, aggregate.SummarizeAttendance(records, s.policy), nil
}

// UpdateRecord corrects an existing attendance mark
func (s *attendanceService) UpdateRecord(ctx context.Context, id int64, req *dto.UpdateAttendanceRequest) (*models.Attendance, error) {
	record, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	record.Status = models.AttendanceStatus(req.Status)
	record.CheckInTime = req.CheckInTime
	record.Notes = req.Notes

	if err := s.attendanceRepo.Update(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}
