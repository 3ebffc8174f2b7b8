package inmem

import (
	"context"
	"sort"
	"time"

	"github.com/psanashik/academy/internal/app/models"
	"github.com/psanashik/academy/internal/pkg/apperrors"
)

type coachRepository struct {
	s *Store
}

func (r *coachRepository) Create(ctx context.Context, coach *models.Coach) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	coach.ID = r.s.nextID()
	coach.IsActive = true
	coach.CreatedAt = time.Now()
	coach.UpdatedAt = coach.CreatedAt
	clone := *coach
	r.s.coaches[coach.ID] = &clone
	return nil
}

func (r *coachRepository) GetByID(ctx context.Context, id int64) (*models.Coach, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	coach, ok := r.s.coaches[id]
	if !ok {
		return nil, apperrors.ErrCoachNotFound
	}
	clone := *coach
	return &clone, nil
}

func (r *coachRepository) List(ctx context.Context, includeInactive bool) ([]*models.Coach, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var coaches []*models.Coach
	for _, coach := range r.s.coaches {
		if !includeInactive && !coach.IsActive {
			continue
		}
		clone := *coach
		coaches = append(coaches, &clone)
	}
	sort.Slice(coaches, func(i, j int) bool { return coaches[i].Name < coaches[j].Name })
	return coaches, nil
}

func (r *coachRepository) Update(ctx context.Context, coach *models.Coach) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.coaches[coach.ID]
	if !ok {
		return apperrors.ErrCoachNotFound
	}
	existing.Name = coach.Name
	existing.Email = coach.Email
	existing.Phone = coach.Phone
	existing.Specialization = coach.Specialization
	existing.Experience = coach.Experience
	existing.Qualifications = coach.Qualifications
	existing.UpdatedAt = time.Now()
	coach.UpdatedAt = existing.UpdatedAt
	return nil
}

func (r *coachRepository) Deactivate(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	coach, ok := r.s.coaches[id]
	if !ok {
		return apperrors.ErrCoachNotFound
	}
	coach.IsActive = false
	coach.UpdatedAt = time.Now()
	return nil
}
