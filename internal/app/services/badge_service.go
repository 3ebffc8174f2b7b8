package services

import (
	"context"
	"time"

	"github.com/psanashik/academy/internal/app/models"
	"github.com/psanashik/academy/internal/app/models/dto"
	"github.com/psanashik/academy/internal/app/repositories"
)

// BadgeService handles badge definitions and awarding them to students.
type BadgeService interface {
	CreateBadge(ctx context.Context, req *dto.CreateBadgeRequest) (*models.StudentBadge, error)
	GetBadge(ctx context.Context, id int64) (*models.StudentBadge, error)
	ListBadges(ctx context.Context, includeInactive bool) ([]*models.StudentBadge, error)
	UpdateBadge(ctx context.Context, id int64, req *dto.CreateBadgeRequest) (*models.StudentBadge, error)
	AwardBadge(ctx context.Context, badgeID int64, req *dto.AwardBadgeRequest) (*models.BadgeEarning, error)
	ListStudentBadges(ctx context.Context, studentID int64) ([]*models.BadgeEarning, error)
}

type badgeService struct {
	badgeRepo   repositories.BadgeRepository
	studentRepo repositories.StudentRepository
}

// NewBadgeService creates a new badge service
func NewBadgeService(badgeRepo repositories.BadgeRepository, studentRepo repositories.StudentRepository) BadgeService {
	return &badgeService{
		badgeRepo:   badgeRepo,
		studentRepo: studentRepo,
	}
}

// CreateBadge creates a new badge definition
func (s *badgeService) CreateBadge(ctx context.Context, req *dto.CreateBadgeRequest) (*models.StudentBadge, error) {
	badge := &models.StudentBadge{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Criteria:    req.Criteria,
		Points:      req.Points,
	}
	if err := s.badgeRepo.Create(ctx, badge); err != nil {
		return nil, err
	}
	return badge, nil
}

// GetBadge retrieves a badge definition by ID
func (s *badgeService) GetBadge(ctx context.Context, id int64) (*models.StudentBadge, error) {
	return s.badgeRepo.GetByID(ctx, id)
}

// ListBadges retrieves badge definitions
func (s *badgeService) ListBadges(ctx context.Context, includeInactive bool) ([]*models.StudentBadge, error) {
	return s.badgeRepo.List(ctx, includeInactive)
}

// UpdateBadge updates a badge definition
func (s *badgeService) UpdateBadge(ctx context.Context, id int64, req *dto.CreateBadgeRequest) (*models.StudentBadge, error) {
	badge, err := s.badgeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	badge.Name = req.Name
	badge.Description = req.Description
	badge.Icon = req.Icon
	badge.Criteria = req.Criteria
	badge.Points = req.Points

	if err := s.badgeRepo.Update(ctx, badge); err != nil {
		return nil, err
	}
	return badge, nil
}

// AwardBadge grants a badge to a student. A student earns each badge at
// most once.
func (s *badgeService) AwardBadge(ctx context.Context, badgeID int64, req *dto.AwardBadgeRequest) (*models.BadgeEarning, error) {
	badge, err := s.badgeRepo.GetByID(ctx, badgeID)
	if err != nil {
		return nil, err
	}
	if _, err := s.studentRepo.GetByID(ctx, req.StudentID); err != nil {
		return nil, err
	}

	earning := &models.BadgeEarning{
		StudentID: req.StudentID,
		BadgeID:   badgeID,
		EarnedAt:  time.Now(),
		Notes:     req.Notes,
	}
	if err := s.badgeRepo.Award(ctx, earning); err != nil {
		return nil, err
	}
	earning.Badge = badge
	return earning, nil
}

// ListStudentBadges retrieves the badges a student has earned
func (s *badgeService) ListStudentBadges(ctx context.Context, studentID int64) ([]*models.BadgeEarning, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}
	return s.badgeRepo.ListEarnings(ctx, studentID)
}
