package services

import (
	"context"
	"regexp"
	"time"

	"github.com/psanashik/academy/internal/app/models"
	"github.com/psanashik/academy/internal/app/models/dto"
	"github.com/psanashik/academy/internal/app/repositories"
	"github.com/psanashik/academy/internal/pkg/apperrors"
)

var studentIDPattern = regexp.MustCompile(`^STU\d{3,}$`)

// StudentService handles student enrollment and lifecycle. Enrollment,
// transfer and deactivation keep the owning batch's capacity counter in
// step with the set of active students.
type StudentService interface {
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error)
	GetStudent(ctx context.Context, id int64) (*models.Student, error)
	ListStudents(ctx context.Context, filter repositories.StudentFilter) ([]*models.Student, error)
	UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error)
	DeactivateStudent(ctx context.Context, id int64) error
}

type studentService struct {
	studentRepo repositories.StudentRepository
	batchRepo   repositories.BatchRepository
	sportRepo   repositories.SportRepository
}

// NewStudentService creates a new student service
func NewStudentService(studentRepo repositories.StudentRepository, batchRepo repositories.BatchRepository, sportRepo repositories.SportRepository) StudentService {
	return &studentService{
		studentRepo: studentRepo,
		batchRepo:   batchRepo,
		sportRepo:   sportRepo,
	}
}

// CreateStudent enrolls a new student into a batch. The batch must have
// space; capacity is checked and the counter bumped atomically by the
// repository, so a full batch rejects the enrollment with no side effects.
func (s *studentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	if !studentIDPattern.MatchString(req.StudentID) {
		return nil, apperrors.ErrInvalidStudentID
	}

	if _, err := s.sportRepo.GetByID(ctx, req.SportID); err != nil {
		return nil, err
	}
	batch, err := s.batchRepo.GetByID(ctx, req.BatchID)
	if err != nil {
		return nil, err
	}
	if batch.SportID != req.SportID {
		return nil, apperrors.NewValidationError("batch does not belong to the selected sport")
	}

	student := &models.Student{
		StudentID:        req.StudentID,
		Name:             req.Name,
		Phone:            req.Phone,
		Email:            req.Email,
		DateOfBirth:      req.DateOfBirth,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
		MedicalNotes:     req.MedicalNotes,
		SportID:          req.SportID,
		BatchID:          req.BatchID,
		SkillLevel:       models.SkillLevel(req.SkillLevel),
		JoiningDate:      time.Now(),
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// GetStudent retrieves a student with sport and batch attached
func (s *studentService) GetStudent(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.attachRelations(ctx, student)
	return student, nil
}

// ListStudents retrieves students matching the filter
func (s *studentService) ListStudents(ctx context.Context, filter repositories.StudentFilter) ([]*models.Student, error) {
	students, err := s.studentRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	for _, student := range students {
		s.attachRelations(ctx, student)
	}
	return students, nil
}

// UpdateStudent updates a student's details. A changed batch is a transfer:
// the target batch must have space, and both capacity counters move
// atomically. A full target batch rejects the whole update.
func (s *studentService) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.BatchID != student.BatchID {
		target, err := s.batchRepo.GetByID(ctx, req.BatchID)
		if err != nil {
			return nil, err
		}
		if target.SportID != student.SportID {
			return nil, apperrors.NewValidationError("target batch does not belong to the student's sport")
		}
		if err := s.studentRepo.Transfer(ctx, id, req.BatchID); err != nil {
			return nil, err
		}
		student.BatchID = req.BatchID
	}

	student.Name = req.Name
	student.Phone = req.Phone
	student.Email = req.Email
	student.Address = req.Address
	student.EmergencyContact = req.EmergencyContact
	student.MedicalNotes = req.MedicalNotes
	student.SkillLevel = models.SkillLevel(req.SkillLevel)

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// DeactivateStudent soft-deletes a student, releasing their batch slot
func (s *studentService) DeactivateStudent(ctx context.Context, id int64) error {
	return s.studentRepo.Deactivate(ctx, id)
}

func (s *studentService) attachRelations(ctx context.Context, student *models.Student) {
	if sport, err := s.sportRepo.GetByID(ctx, student.SportID); err == nil {
		student.Sport = sport
	}
	if batch, err := s.batchRepo.GetByID(ctx, student.BatchID); err == nil {
		student.Batch = batch
	}
}
