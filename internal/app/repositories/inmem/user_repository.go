package inmem

import (
	"context"
	"strings"
	"time"

	"github.com/psanashik/academy/internal/app/models"
	"github.com/psanashik/academy/internal/app/repositories"
	"github.com/psanashik/academy/internal/pkg/apperrors"
)

type userRepository struct {
	s *Store
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return apperrors.ErrEmailAlreadyExists
		}
		if existing.Phone == user.Phone {
			return apperrors.ErrPhoneAlreadyExists
		}
	}

	user.ID = r.s.nextID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	r.s.users[user.ID] = &clone
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	user, ok := r.s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, user := range r.s.users {
		if strings.EqualFold(user.Email, email) {
			clone := *user
			return &clone, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *userRepository) List(ctx context.Context, filter repositories.UserFilter) ([]*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var users []*models.User
	for _, user := range r.s.users {
		if !filter.IncludeInactive && !user.IsActive {
			continue
		}
		if filter.Role != "" && user.Role != filter.Role {
			continue
		}
		if filter.Search != "" && !matchesSearch(filter.Search, user.Name, user.Email, user.Phone) {
			continue
		}
		clone := *user
		users = append(users, &clone)
	}
	sortByID(users, func(u *models.User) int64 { return u.ID })
	return users, nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.users[user.ID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	for _, other := range r.s.users {
		if other.ID == user.ID {
			continue
		}
		if strings.EqualFold(other.Email, user.Email) {
			return apperrors.ErrEmailAlreadyExists
		}
		if other.Phone == user.Phone {
			return apperrors.ErrPhoneAlreadyExists
		}
	}

	existing.Name = user.Name
	existing.Email = user.Email
	existing.Phone = user.Phone
	existing.Role = user.Role
	existing.Permissions = user.Permissions
	existing.IsActive = user.IsActive
	existing.UpdatedAt = time.Now()
	user.UpdatedAt = existing.UpdatedAt
	return nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	user, ok := r.s.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.Password = passwordHash
	user.UpdatedAt = time.Now()
	return nil
}

func (r *userRepository) RecordLogin(ctx context.Context, id int64, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	user, ok := r.s.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.LastLoginAt = &at
	return nil
}

func (r *userRepository) Deactivate(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	user, ok := r.s.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.IsActive = false
	user.UpdatedAt = time.Now()
	return nil
}
