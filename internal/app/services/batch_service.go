package services

import (
	"context"

	"github.com/psanashik/academy/internal/app/aggregate"
	"github.com/psanashik/academy/internal/app/models"
	"github.com/psanashik/academy/internal/app/models/dto"
	"github.com/psanashik/academy/internal/app/repositories"
	"github.com/psanashik/academy/internal/pkg/apperrors"
)

// BatchService handles training batch management.
type BatchService interface {
	CreateBatch(ctx context.Context, req *dto.CreateBatchRequest) (*models.Batch, error)
	GetBatch(ctx context.Context, id int64) (*models.Batch, error)
	ListBatches(ctx context.Context, includeInactive bool) ([]*models.Batch, aggregate.BatchStats, error)
	UpdateBatch(ctx context.Context, id int64, req *dto.UpdateBatchRequest) (*models.Batch, error)
	DeactivateBatch(ctx context.Context, id int64) error
	RecomputeCapacities(ctx context.Context) error
}

type batchService struct {
	batchRepo repositories.BatchRepository
	sportRepo repositories.SportRepository
	coachRepo repositories.CoachRepository
}

// NewBatchService creates a new batch service
func NewBatchService(batchRepo repositories.BatchRepository, sportRepo repositories.SportRepository, coachRepo repositories.CoachRepository) BatchService {
	return &batchService{
		batchRepo: batchRepo,
		sportRepo: sportRepo,
		coachRepo: coachRepo,
	}
}

// CreateBatch creates a new batch under an existing sport and coach
func (s *batchService) CreateBatch(ctx context.Context, req *dto.CreateBatchRequest) (*models.Batch, error) {
	if _, err := s.sportRepo.GetByID(ctx, req.SportID); err != nil {
		return nil, err
	}
	if _, err := s.coachRepo.GetByID(ctx, req.CoachID); err != nil {
		return nil, err
	}

	batch := &models.Batch{
		Name:        req.Name,
		SportID:     req.SportID,
		CoachID:     req.CoachID,
		Schedule:    req.Schedule,
		MaxCapacity: req.MaxCapacity,
		SkillLevel:  models.SkillLevel(req.SkillLevel),
	}

	if err := s.batchRepo.Create(ctx, batch); err != nil {
		return nil, err
	}
	return batch, nil
}

// GetBatch retrieves a batch with sport and coach attached
func (s *batchService) GetBatch(ctx context.Context, id int64) (*models.Batch, error) {
	batch, err := s.batchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.attachRelations(ctx, batch)
	return batch, nil
}

// ListBatches retrieves batches along with the stats computed over them
func (s *batchService) ListBatches(ctx context.Context, includeInactive bool) ([]*models.Batch, aggregate.BatchStats, error) {
	batches, err := s.batchRepo.List(ctx, includeInactive)
	if err != nil {
		return nil, aggregate.BatchStats{}, err
	}
	for _, batch := range batches {
		s.attachRelations(ctx, batch)
	}
	return batches, aggregate.SummarizeBatches(batches), nil
}

// UpdateBatch updates a batch's details. A max capacity below the current
// enrollment is rejected; existing students are never evicted.
func (s *batchService) UpdateBatch(ctx context.Context, id int64, req *dto.UpdateBatchRequest) (*models.Batch, error) {
	batch, err := s.batchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.MaxCapacity < batch.CurrentCapacity {
		return nil, apperrors.NewValidationError("maxCapacity cannot be below current enrollment")
	}
	if _, err := s.coachRepo.GetByID(ctx, req.CoachID); err != nil {
		return nil, err
	}

	batch.Name = req.Name
	batch.CoachID = req.CoachID
	batch.Schedule = req.Schedule
	batch.MaxCapacity = req.MaxCapacity
	batch.SkillLevel = models.SkillLevel(req.SkillLevel)

	if err := s.batchRepo.Update(ctx, batch); err != nil {
		return nil, err
	}
	return batch, nil
}

// DeactivateBatch soft-deletes a batch
func (s *batchService) DeactivateBatch(ctx context.Context, id int64) error {
	return s.batchRepo.Deactivate(ctx, id)
}

// RecomputeCapacities resets every batch counter from the stored active
// student counts. Consistency repair, not part of the normal write paths.
func (s *batchService) RecomputeCapacities(ctx context.Context) error {
	return s.batchRepo.RecomputeCapacities(ctx)
}

func (s *batchService) attachRelations(ctx context.Context, batch *models.Batch) {
	if sport, err := s.sportRepo.GetByID(ctx, batch.SportID); err == nil {
		batch.Sport = sport
	}
	if coach, err := s.coachRepo.GetByID(ctx, batch.CoachID); err == nil {
		batch.Coach = coach
	}
}
