package services

import (
	"context"
	"time"

	"github.com/psanashik/academy/internal/app/models"
	"github.com/psanashik/academy/internal/app/models/dto"
	"github.com/psanashik/academy/internal/app/repositories"
)

// GPSService records and queries location reports.
type GPSService interface {
	RecordPing(ctx context.Context, req *dto.CreateGPSPingRequest) (*models.GPSPing, error)
	ListPings(ctx context.Context, filter repositories.GPSFilter) ([]*models.GPSPing, error)
}

type gpsService struct {
	gpsRepo repositories.GPSRepository
}

// NewGPSService creates a new GPS tracking service
func NewGPSService(gpsRepo repositories.GPSRepository) GPSService {
	return &gpsService{gpsRepo: gpsRepo}
}

// RecordPing stores a location report, defaulting the timestamp to now
func (s *gpsService) RecordPing(ctx context.Context, req *dto.CreateGPSPingRequest) (*models.GPSPing, error) {
	timestamp := time.Now()
	if req.Timestamp != nil {
		timestamp = *req.Timestamp
	}

	ping := &models.GPSPing{
		UserID:    req.UserID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Accuracy:  req.Accuracy,
		Timestamp: timestamp,
		Activity:  req.Activity,
		Location:  req.Location,
	}
	if err := s.gpsRepo.Create(ctx, ping); err != nil {
		return nil, err
	}
	return ping, nil
}

// ListPings retrieves location reports matching the filter
func (s *gpsService) ListPings(ctx context.Context, filter repositories.GPSFilter) ([]*models.GPSPing, error) {
	return s.gpsRepo.List(ctx, filter)
}
