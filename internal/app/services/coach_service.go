package services

import (
	"context"

	"github.com/psanashik/academy/internal/app/models"
	"github.com/psanashik/academy/internal/app/models/dto"
	"github.com/psanashik/academy/internal/app/repositories"
)

// CoachService handles coach management.
type CoachService interface {
	CreateCoach(ctx context.Context, req *dto.CreateCoachRequest) (*models.Coach, error)
	GetCoach(ctx context.Context, id int64) (*models.Coach, error)
	ListCoaches(ctx context.Context, includeInactive bool) ([]*models.Coach, error)
	UpdateCoach(ctx context.Context, id int64, req *dto.CreateCoachRequest) (*models.Coach, error)
	DeactivateCoach(ctx context.Context, id int64) error
}

type coachService struct {
	coachRepo repositories.CoachRepository
}

// NewCoachService creates a new coach service
func NewCoachService(coachRepo repositories.CoachRepository) CoachService {
	return &coachService{coachRepo: coachRepo}
}

// CreateCoach creates a new coach
func (s *coachService) CreateCoach(ctx context.Context, req *dto.CreateCoachRequest) (*models.Coach, error) {
	coach := &models.Coach{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Specialization: req.Specialization,
		Experience:     req.Experience,
		Qualifications: req.Qualifications,
	}
	if err := s.coachRepo.Create(ctx, coach); err != nil {
		return nil, err
	}
	return coach, nil
}

// GetCoach retrieves a coach by ID
func (s *coachService) GetCoach(ctx context.Context, id int64) (*models.Coach, error) {
	return s.coachRepo.GetByID(ctx, id)
}

// ListCoaches retrieves coaches, optionally including inactive ones
func (s *coachService) ListCoaches(ctx context.Context, includeInactive bool) ([]*models.Coach, error) {
	return s.coachRepo.List(ctx, includeInactive)
}

// UpdateCoach updates a coach's details
func (s *coachService) UpdateCoach(ctx context.Context, id int64, req *dto.CreateCoachRequest) (*models.Coach, error) {
	coach, err := s.coachRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	coach.Name = req.Name
	coach.Email = req.Email
	coach.Phone = req.Phone
	coach.Specialization = req.Specialization
	coach.Experience = req.Experience
	coach.Qualifications = req.Qualifications

	if err := s.coachRepo.Update(ctx, coach); err != nil {
		return nil, err
	}
	return coach, nil
}

// DeactivateCoach soft-deletes a coach
func (s *coachService) DeactivateCoach(ctx context.Context, id int64) error {
	return s.coachRepo.Deactivate(ctx, id)
}
