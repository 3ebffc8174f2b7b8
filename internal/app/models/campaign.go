package models

import "time"

// CampaignMetrics holds reach/engagement numbers reported for a campaign.
type CampaignMetrics struct {
	Reach      int `json:"reach"`
	Engagement int `json:"engagement"`
	Conversion int `json:"conversion"`
}

// Campaign defines the campaign model based on the 'campaigns' table
type Campaign struct {
	ID             int64            `json:"id" db:"id"`
	Name           string           `json:"name" db:"name"`
	Description    *string          `json:"description,omitempty" db:"description"`
	Type           string           `json:"type" db:"type"` // enrollment, retention, promotion
	TargetAudience map[string]any   `json:"targetAudience,omitempty" db:"target_audience"`
	Channels       []string         `json:"channels,omitempty" db:"channels"`
	Content        map[string]any   `json:"content,omitempty" db:"content"`
	Status         CampaignStatus   `json:"status" db:"status"`
	StartDate      *time.Time       `json:"startDate,omitempty" db:"start_date"`
	EndDate        *time.Time       `json:"endDate,omitempty" db:"end_date"`
	Metrics        *CampaignMetrics `json:"metrics,omitempty" db:"metrics"`
	CreatedBy      *int64           `json:"createdBy,omitempty" db:"created_by"`
	CreatedAt      time.Time        `json:"createdAt" db:"created_at"`
}
