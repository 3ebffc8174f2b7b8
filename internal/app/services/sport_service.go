package services

import (
	"context"

	"github.com/psanashik/academy/internal/app/models"
	"github.com/psanashik/academy/internal/app/models/dto"
	"github.com/psanashik/academy/internal/app/repositories"
)

// SportService handles the sports catalog and its fee structures.
type SportService interface {
	CreateSport(ctx context.Context, req *dto.CreateSportRequest) (*models.Sport, error)
	GetSport(ctx context.Context, id int64) (*models.Sport, error)
	ListSports(ctx context.Context, includeInactive bool) ([]*models.Sport, error)
	UpdateSport(ctx context.Context, id int64, req *dto.CreateSportRequest) (*models.Sport, error)
	DeactivateSport(ctx context.Context, id int64) error
}

type sportService struct {
	sportRepo repositories.SportRepository
}

// NewSportService creates a new sport service
func NewSportService(sportRepo repositories.SportRepository) SportService {
	return &sportService{sportRepo: sportRepo}
}

// CreateSport creates a new sport with its fee structure
func (s *sportService) CreateSport(ctx context.Context, req *dto.CreateSportRequest) (*models.Sport, error) {
	sport := &models.Sport{
		Name:         req.Name,
		Description:  req.Description,
		FeeStructure: req.ToFeeStructure(),
	}
	if err := s.sportRepo.Create(ctx, sport); err != nil {
		return nil, err
	}
	return sport, nil
}

// GetSport retrieves a sport by ID
func (s *sportService) GetSport(ctx context.Context, id int64) (*models.Sport, error) {
	return s.sportRepo.GetByID(ctx, id)
}

// ListSports retrieves sports, optionally including inactive ones
func (s *sportService) ListSports(ctx context.Context, includeInactive bool) ([]*models.Sport, error) {
	return s.sportRepo.List(ctx, includeInactive)
}

// UpdateSport updates a sport's details and fee structure. Fee changes
// only affect payments created afterwards.
func (s *sportService) UpdateSport(ctx context.Context, id int64, req *dto.CreateSportRequest) (*models.Sport, error) {
	sport, err := s.sportRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sport.Name = req.Name
	sport.Description = req.Description
	sport.FeeStructure = req.ToFeeStructure()

	if err := s.sportRepo.Update(ctx, sport); err != nil {
		return nil, err
	}
	return sport, nil
}

// DeactivateSport soft-deletes a sport
func (s *sportService) DeactivateSport(ctx context.Context, id int64) error {
	return s.sportRepo.Deactivate(ctx, id)
}
