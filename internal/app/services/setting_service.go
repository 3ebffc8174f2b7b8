package services

import (
	"context"
	"errors"

	"github.com/psanashik/academy/internal/app/models"
	"github.com/psanashik/academy/internal/app/models/dto"
	"github.com/psanashik/academy/internal/app/repositories"
	"github.com/psanashik/academy/internal/pkg/apperrors"
)

// SettingService handles system-wide configuration entries.
type SettingService interface {
	UpsertSetting(ctx context.Context, req *dto.UpsertSettingRequest, updatedBy *int64) (*models.SystemSetting, error)
	GetSetting(ctx context.Context, key string) (*models.SystemSetting, error)
	ListSettings(ctx context.Context, category string) ([]*models.SystemSetting, error)
	DeleteSetting(ctx context.Context, key string) error
}

type settingService struct {
	settingRepo repositories.SettingRepository
}

// NewSettingService creates a new settings service
func NewSettingService(settingRepo repositories.SettingRepository) SettingService {
	return &settingService{settingRepo: settingRepo}
}

// UpsertSetting creates a setting or replaces the value of an existing one
func (s *settingService) UpsertSetting(ctx context.Context, req *dto.UpsertSettingRequest, updatedBy *int64) (*models.SystemSetting, error) {
	setting := &models.SystemSetting{
		Key:         req.Key,
		Value:       req.Value,
		Description: req.Description,
		Category:    req.Category,
		UpdatedBy:   updatedBy,
	}

	err := s.settingRepo.Create(ctx, setting)
	if errors.Is(err, apperrors.ErrSettingKeyExists) {
		err = s.settingRepo.Update(ctx, setting)
	}
	if err != nil {
		return nil, err
	}
	return setting, nil
}

// GetSetting retrieves a setting by key
func (s *settingService) GetSetting(ctx context.Context, key string) (*models.SystemSetting, error) {
	return s.settingRepo.GetByKey(ctx, key)
}

// ListSettings retrieves settings, optionally restricted to a category
func (s *settingService) ListSettings(ctx context.Context, category string) ([]*models.SystemSetting, error) {
	return s.settingRepo.List(ctx, category)
}

// DeleteSetting removes a setting by key
func (s *settingService) DeleteSetting(ctx context.Context, key string) error {
	return s.settingRepo.Delete(ctx, key)
}
