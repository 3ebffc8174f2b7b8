package inmem

import (
	"context"
	"sort"
	"time"

	"github.com/psanashik/academy/internal/app/models"
	"github.com/psanashik/academy/internal/pkg/apperrors"
)

type communicationRepository struct {
	s *Store
}

func (r *communicationRepository) Create(ctx context.Context, comm *models.Communication) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	comm.ID = r.s.nextID()
	comm.CreatedAt = time.Now()
	clone := *comm
	r.s.communications[comm.ID] = &clone
	return nil
}

func (r *communicationRepository) GetByID(ctx context.Context, id int64) (*models.Communication, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	comm, ok := r.s.communications[id]
	if !ok {
		return nil, apperrors.ErrCommunicationNotFound
	}
	clone := *comm
	return &clone, nil
}

func (r *communicationRepository) List(ctx context.Context) ([]*models.Communication, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var comms []*models.Communication
	for _, comm := range r.s.communications {
		clone := *comm
		comms = append(comms, &clone)
	}
	sort.Slice(comms, func(i, j int) bool { return comms[i].ID > comms[j].ID })
	return comms, nil
}

func (r *communicationRepository) UpdateStatus(ctx context.Context, id int64, status models.CommunicationStatus, sentAt *time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	comm, ok := r.s.communications[id]
	if !ok {
		return apperrors.ErrCommunicationNotFound
	}
	comm.Status = status
	if sentAt != nil {
		comm.SentAt = sentAt
	}
	return nil
}

type campaignRepository struct {
	s *Store
}

func (r *campaignRepository) Create(ctx context.Context, campaign *models.Campaign) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	campaign.ID = r.s.nextID()
	campaign.CreatedAt = time.Now()
	clone := *campaign
	r.s.campaigns[campaign.ID] = &clone
	return nil
}

func (r *campaignRepository) GetByID(ctx context.Context, id int64) (*models.Campaign, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	campaign, ok := r.s.campaigns[id]
	if !ok {
		return nil, apperrors.ErrCampaignNotFound
	}
	clone := *campaign
	return &clone, nil
}

func (r *campaignRepository) List(ctx context.Context) ([]*models.Campaign, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var campaigns []*models.Campaign
	for _, campaign := range r.s.campaigns {
		clone := *campaign
		campaigns = append(campaigns, &clone)
	}
	sort.Slice(campaigns, func(i, j int) bool { return campaigns[i].ID > campaigns[j].ID })
	return campaigns, nil
}

func (r *campaignRepository) Update(ctx context.Context, campaign *models.Campaign) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.campaigns[campaign.ID]
	if !ok {
		return apperrors.ErrCampaignNotFound
	}
	existing.Name = campaign.Name
	existing.Description = campaign.Description
	existing.TargetAudience = campaign.TargetAudience
	existing.Channels = campaign.Channels
	existing.Content = campaign.Content
	existing.Status = campaign.Status
	existing.StartDate = campaign.StartDate
	existing.EndDate = campaign.EndDate
	existing.Metrics = campaign.Metrics
	return nil
}

type badgeRepository struct {
	s *Store
}

func (r *badgeRepository) Create(ctx context.Context, badge *models.StudentBadge) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	badge.ID = r.s.nextID()
	badge.IsActive = true
	badge.CreatedAt = time.Now()
	clone := *badge
	r.s.badges[badge.ID] = &clone
	return nil
}

func (r *badgeRepository) GetByID(ctx context.Context, id int64) (*models.StudentBadge, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	badge, ok := r.s.badges[id]
	if !ok {
		return nil, apperrors.ErrBadgeNotFound
	}
	clone := *badge
	return &clone, nil
}

func (r *badgeRepository) List(ctx context.Context, includeInactive bool) ([]*models.StudentBadge, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var badges []*models.StudentBadge
	for _, badge := range r.s.badges {
		if !includeInactive && !badge.IsActive {
			continue
		}
		clone := *badge
		badges = append(badges, &clone)
	}
	sortByID(badges, func(b *models.StudentBadge) int64 { return b.ID })
	return badges, nil
}

func (r *badgeRepository) Update(ctx context.Context, badge *models.StudentBadge) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.badges[badge.ID]
	if !ok {
		return apperrors.ErrBadgeNotFound
	}
	existing.Name = badge.Name
	existing.Description = badge.Description
	existing.Icon = badge.Icon
	existing.Criteria = badge.Criteria
	existing.Points = badge.Points
	existing.IsActive = badge.IsActive
	return nil
}

func (r *badgeRepository) Award(ctx context.Context, earning *models.BadgeEarning) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.badges[earning.BadgeID]; !ok {
		return apperrors.ErrBadgeNotFound
	}
	for _, existing := range r.s.earnings {
		if existing.StudentID == earning.StudentID && existing.BadgeID == earning.BadgeID {
			return apperrors.ErrBadgeAlreadyEarned
		}
	}

	earning.ID = r.s.nextID()
	clone := *earning
	clone.Badge = nil
	r.s.earnings[earning.ID] = &clone
	return nil
}

func (r *badgeRepository) ListEarnings(ctx context.Context, studentID int64) ([]*models.BadgeEarning, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var earnings []*models.BadgeEarning
	for _, earning := range r.s.earnings {
		if earning.StudentID != studentID {
			continue
		}
		clone := *earning
		if badge, ok := r.s.badges[earning.BadgeID]; ok {
			badgeClone := *badge
			clone.Badge = &badgeClone
		}
		earnings = append(earnings, &clone)
	}
	sort.Slice(earnings, func(i, j int) bool { return earnings[i].ID > earnings[j].ID })
	return earnings, nil
}
