package inmem

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/psanashik/academy/internal/app/models"
	"github.com/psanashik/academy/internal/pkg/apperrors"
)

type sportRepository struct {
	s *Store
}

func (r *sportRepository) Create(ctx context.Context, sport *models.Sport) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.sports {
		if strings.EqualFold(existing.Name, sport.Name) {
			return apperrors.ErrConflict
		}
	}

	sport.ID = r.s.nextID()
	sport.IsActive = true
	sport.CreatedAt = time.Now()
	sport.UpdatedAt = sport.CreatedAt
	clone := *sport
	r.s.sports[sport.ID] = &clone
	return nil
}

func (r *sportRepository) GetByID(ctx context.Context, id int64) (*models.Sport, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sport, ok := r.s.sports[id]
	if !ok {
		return nil, apperrors.ErrSportNotFound
	}
	clone := *sport
	return &clone, nil
}

func (r *sportRepository) List(ctx context.Context, includeInactive bool) ([]*models.Sport, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var sports []*models.Sport
	for _, sport := range r.s.sports {
		if !includeInactive && !sport.IsActive {
			continue
		}
		clone := *sport
		sports = append(sports, &clone)
	}
	sort.Slice(sports, func(i, j int) bool { return sports[i].Name < sports[j].Name })
	return sports, nil
}

func (r *sportRepository) Update(ctx context.Context, sport *models.Sport) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.sports[sport.ID]
	if !ok {
		return apperrors.ErrSportNotFound
	}
	for _, other := range r.s.sports {
		if other.ID != sport.ID && strings.EqualFold(other.Name, sport.Name) {
			return apperrors.ErrConflict
		}
	}
	existing.Name = sport.Name
	existing.Description = sport.Description
	existing.FeeStructure = sport.FeeStructure
	existing.UpdatedAt = time.Now()
	sport.UpdatedAt = existing.UpdatedAt
	return nil
}

func (r *sportRepository) Deactivate(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sport, ok := r.s.sports[id]
	if !ok {
		return apperrors.ErrSportNotFound
	}
	sport.IsActive = false
	sport.UpdatedAt = time.Now()
	return nil
}
