package inmem

import (
	"context"
	"time"

	"github.com/psanashik/academy/internal/app/models"
	"github.com/psanashik/academy/internal/pkg/apperrors"
)

type batchRepository struct {
	s *Store
}

func (r *batchRepository) Create(ctx context.Context, batch *models.Batch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.sports[batch.SportID]; !ok {
		return apperrors.ErrSportNotFound
	}

	batch.ID = r.s.nextID()
	batch.CurrentCapacity = 0
	batch.IsActive = true
	batch.CreatedAt = time.Now()
	clone := *batch
	r.s.batches[batch.ID] = &clone
	return nil
}

func (r *batchRepository) GetByID(ctx context.Context, id int64) (*models.Batch, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	batch, ok := r.s.batches[id]
	if !ok {
		return nil, apperrors.ErrBatchNotFound
	}
	clone := *batch
	return &clone, nil
}

func (r *batchRepository) List(ctx context.Context, includeInactive bool) ([]*models.Batch, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var batches []*models.Batch
	for _, batch := range r.s.batches {
		if !includeInactive && !batch.IsActive {
			continue
		}
		clone := *batch
		batches = append(batches, &clone)
	}
	sortByID(batches, func(b *models.Batch) int64 { return b.ID })
	return batches, nil
}

func (r *batchRepository) Update(ctx context.Context, batch *models.Batch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.batches[batch.ID]
	if !ok {
		return apperrors.ErrBatchNotFound
	}
	existing.Name = batch.Name
	existing.CoachID = batch.CoachID
	existing.Schedule = batch.Schedule
	existing.MaxCapacity = batch.MaxCapacity
	existing.SkillLevel = batch.SkillLevel
	return nil
}

func (r *batchRepository) Deactivate(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	batch, ok := r.s.batches[id]
	if !ok {
		return apperrors.ErrBatchNotFound
	}
	batch.IsActive = false
	return nil
}

func (r *batchRepository) RecomputeCapacities(ctx context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	counts := make(map[int64]int)
	for _, student := range r.s.students {
		if student.IsActive {
			counts[student.BatchID]++
		}
	}
	for id, batch := range r.s.batches {
		batch.CurrentCapacity = counts[id]
	}
	return nil
}
