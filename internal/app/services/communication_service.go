package services

import (
	"context"
	"time"

	"github.com/psanashik/academy/internal/app/models"
	"github.com/psanashik/academy/internal/app/models/dto"
	"github.com/psanashik/academy/internal/app/repositories"
	"github.com/psanashik/academy/internal/pkg/apperrors"
)

// CommunicationService tracks outbound messages and their delivery
// progression. Actual delivery is an external concern; this service only
// owns the status machine.
type CommunicationService interface {
	CreateCommunication(ctx context.Context, req *dto.CreateCommunicationRequest, createdBy *int64) (*models.Communication, error)
	GetCommunication(ctx context.Context, id int64) (*models.Communication, error)
	ListCommunications(ctx context.Context) ([]*models.Communication, error)
	UpdateStatus(ctx context.Context, id int64, status models.CommunicationStatus) (*models.Communication, error)
}

type communicationService struct {
	commRepo repositories.CommunicationRepository
}

// NewCommunicationService creates a new communication service
func NewCommunicationService(commRepo repositories.CommunicationRepository) CommunicationService {
	return &communicationService{commRepo: commRepo}
}

// CreateCommunication records a new outbound message in pending state
func (s *communicationService) CreateCommunication(ctx context.Context, req *dto.CreateCommunicationRequest, createdBy *int64) (*models.Communication, error) {
	comm := &models.Communication{
		Type:          req.Type,
		RecipientType: req.RecipientType,
		RecipientIDs:  req.RecipientIDs,
		Subject:       req.Subject,
		Message:       req.Message,
		Status:        models.CommunicationPending,
		ScheduledAt:   req.ScheduledAt,
		CreatedBy:     createdBy,
	}
	if err := s.commRepo.Create(ctx, comm); err != nil {
		return nil, err
	}
	return comm, nil
}

// GetCommunication retrieves a communication by ID
func (s *communicationService) GetCommunication(ctx context.Context, id int64) (*models.Communication, error) {
	return s.commRepo.GetByID(ctx, id)
}

// ListCommunications retrieves all communications, newest first
func (s *communicationService) ListCommunications(ctx context.Context) ([]*models.Communication, error) {
	return s.commRepo.List(ctx)
}

// UpdateStatus moves a communication along pending→sent→delivered/failed.
// Illegal transitions, including any move out of a terminal state, are
// rejected without mutating the record.
func (s *communicationService) UpdateStatus(ctx context.Context, id int64, status models.CommunicationStatus) (*models.Communication, error) {
	comm, err := s.commRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !comm.Status.CanTransitionTo(status) {
		return nil, apperrors.ErrInvalidStatusTransition
	}

	var sentAt *time.Time
	if status == models.CommunicationSent {
		now := time.Now()
		sentAt = &now
	}

	if err := s.commRepo.UpdateStatus(ctx, id, status, sentAt); err != nil {
		return nil, err
	}

	comm.Status = status
	if sentAt != nil {
		comm.SentAt = sentAt
	}
	return comm, nil
}
