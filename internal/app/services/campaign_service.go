package services

import (
	"context"

	"github.com/psanashik/academy/internal/app/models"
	"github.com/psanashik/academy/internal/app/models/dto"
	"github.com/psanashik/academy/internal/app/repositories"
	"github.com/psanashik/academy/internal/pkg/apperrors"
)

// CampaignService handles marketing campaigns and their lifecycle.
type CampaignService interface {
	CreateCampaign(ctx context.Context, req *dto.CreateCampaignRequest, createdBy *int64) (*models.Campaign, error)
	GetCampaign(ctx context.Context, id int64) (*models.Campaign, error)
	ListCampaigns(ctx context.Context) ([]*models.Campaign, error)
	UpdateCampaign(ctx context.Context, id int64, req *dto.CreateCampaignRequest) (*models.Campaign, error)
	UpdateStatus(ctx context.Context, id int64, status models.CampaignStatus) (*models.Campaign, error)
}

type campaignService struct {
	campaignRepo repositories.CampaignRepository
}

// NewCampaignService creates a new campaign service
func NewCampaignService(campaignRepo repositories.CampaignRepository) CampaignService {
	return &campaignService{campaignRepo: campaignRepo}
}

// CreateCampaign creates a new campaign in draft state
func (s *campaignService) CreateCampaign(ctx context.Context, req *dto.CreateCampaignRequest, createdBy *int64) (*models.Campaign, error) {
	campaign := &models.Campaign{
		Name:           req.Name,
		Description:    req.Description,
		Type:           req.Type,
		TargetAudience: req.TargetAudience,
		Channels:       req.Channels,
		Content:        req.Content,
		Status:         models.CampaignDraft,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		CreatedBy:      createdBy,
	}
	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// GetCampaign retrieves a campaign by ID
func (s *campaignService) GetCampaign(ctx context.Context, id int64) (*models.Campaign, error) {
	return s.campaignRepo.GetByID(ctx, id)
}

// ListCampaigns retrieves all campaigns, newest first
func (s *campaignService) ListCampaigns(ctx context.Context) ([]*models.Campaign, error) {
	return s.campaignRepo.List(ctx)
}

// UpdateCampaign updates a campaign's content and targeting
func (s *campaignService) UpdateCampaign(ctx context.Context, id int64, req *dto.CreateCampaignRequest) (*models.Campaign, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	campaign.Name = req.Name
	campaign.Description = req.Description
	campaign.TargetAudience = req.TargetAudience
	campaign.Channels = req.Channels
	campaign.Content = req.Content
	campaign.StartDate = req.StartDate
	campaign.EndDate = req.EndDate

	if err := s.campaignRepo.Update(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// UpdateStatus moves a campaign through draft→active→paused/completed.
// Completed is terminal.
func (s *campaignService) UpdateStatus(ctx context.Context, id int64, status models.CampaignStatus) (*models.Campaign, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !campaign.Status.CanTransitionTo(status) {
		return nil, apperrors.ErrInvalidStatusTransition
	}

	campaign.Status = status
	if err := s.campaignRepo.Update(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}
