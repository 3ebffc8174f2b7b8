package inmem

import (
	"context"
	"sort"
	"time"

	"github.com/psanashik/academy/internal/app/models"
	"github.com/psanashik/academy/internal/app/repositories"
	"github.com/psanashik/academy/internal/pkg/apperrors"
)

type gpsRepository struct {
	s *Store
}

func (r *gpsRepository) Create(ctx context.Context, ping *models.GPSPing) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[ping.UserID]; !ok {
		return apperrors.ErrUserNotFound
	}

	ping.ID = r.s.nextID()
	clone := *ping
	r.s.pings[ping.ID] = &clone
	return nil
}

func (r *gpsRepository) List(ctx context.Context, filter repositories.GPSFilter) ([]*models.GPSPing, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var pings []*models.GPSPing
	for _, ping := range r.s.pings {
		if filter.UserID > 0 && ping.UserID != filter.UserID {
			continue
		}
		if filter.From != nil && ping.Timestamp.Before(*filter.From) {
			continue
		}
		if filter.To != nil && ping.Timestamp.After(*filter.To) {
			continue
		}
		clone := *ping
		pings = append(pings, &clone)
	}
	sort.Slice(pings, func(i, j int) bool { return pings[i].Timestamp.After(pings[j].Timestamp) })
	return pings, nil
}

type settingRepository struct {
	s *Store
}

func (r *settingRepository) Create(ctx context.Context, setting *models.SystemSetting) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.settings[setting.Key]; ok {
		return apperrors.ErrSettingKeyExists
	}

	setting.ID = r.s.nextID()
	setting.UpdatedAt = time.Now()
	clone := *setting
	r.s.settings[setting.Key] = &clone
	return nil
}

func (r *settingRepository) GetByKey(ctx context.Context, key string) (*models.SystemSetting, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	setting, ok := r.s.settings[key]
	if !ok {
		return nil, apperrors.ErrSettingNotFound
	}
	clone := *setting
	return &clone, nil
}

func (r *settingRepository) List(ctx context.Context, category string) ([]*models.SystemSetting, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var settings []*models.SystemSetting
	for _, setting := range r.s.settings {
		if category != "" && setting.Category != category {
			continue
		}
		clone := *setting
		settings = append(settings, &clone)
	}
	sort.Slice(settings, func(i, j int) bool {
		if settings[i].Category != settings[j].Category {
			return settings[i].Category < settings[j].Category
		}
		return settings[i].Key < settings[j].Key
	})
	return settings, nil
}

func (r *settingRepository) Update(ctx context.Context, setting *models.SystemSetting) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.settings[setting.Key]
	if !ok {
		return apperrors.ErrSettingNotFound
	}
	existing.Value = setting.Value
	if setting.Description != nil {
		existing.Description = setting.Description
	}
	existing.UpdatedBy = setting.UpdatedBy
	existing.UpdatedAt = time.Now()
	setting.ID = existing.ID
	setting.UpdatedAt = existing.UpdatedAt
	return nil
}

func (r *settingRepository) Delete(ctx context.Context, key string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.settings[key]; !ok {
		return apperrors.ErrSettingNotFound
	}
	delete(r.s.settings, key)
	return nil
}

type tokenRepository struct {
	s *Store
}

func (r *tokenRepository) CreateToken(ctx context.Context, token string, userID int64, expiryDate time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.tokens[token] = &refreshToken{userID: userID, expiryDate: expiryDate}
	return nil
}

func (r *tokenRepository) GetTokenByValue(ctx context.Context, token string) (int64, time.Time, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rt, ok := r.s.tokens[token]
	if !ok {
		return 0, time.Time{}, false, apperrors.ErrTokenNotFound
	}
	return rt.userID, rt.expiryDate, rt.isRevoked, nil
}

func (r *tokenRepository) RevokeToken(ctx context.Context, token string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rt, ok := r.s.tokens[token]
	if !ok {
		return apperrors.ErrTokenNotFound
	}
	rt.isRevoked = true
	return nil
}

func (r *tokenRepository) RevokeAllUserTokens(ctx context.Context, userID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, rt := range r.s.tokens {
		if rt.userID == userID {
			rt.isRevoked = true
		}
	}
	return nil
}
