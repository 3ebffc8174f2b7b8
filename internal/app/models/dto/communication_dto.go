package dto

import "time"

// CreateCommunicationRequest is the payload for POST /api/communications
type CreateCommunicationRequest struct {
	Type          string     `json:"type" binding:"required,oneof=sms email whatsapp notification"`
	RecipientType string     `json:"recipientType" binding:"required,oneof=student coach parent all"`
	RecipientIDs  []int64    `json:"recipientIds,omitempty"`
	Subject       *string    `json:"subject,omitempty"`
	Message       string     `json:"message" binding:"required"`
	ScheduledAt   *time.Time `json:"scheduledAt,omitempty"`
}

// UpdateCommunicationStatusRequest moves a communication along the
// pending→sent→delivered/failed progression.
type UpdateCommunicationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=sent delivered failed"`
}

// CreateCampaignRequest is the payload for POST /api/campaigns
type CreateCampaignRequest struct {
	Name           string         `json:"name" binding:"required"`
	Description    *string        `json:"description,omitempty"`
	Type           string         `json:"type" binding:"required,oneof=enrollment retention promotion"`
	TargetAudience map[string]any `json:"targetAudience,omitempty"`
	Channels       []string       `json:"channels,omitempty"`
	Content        map[string]any `json:"content,omitempty"`
	StartDate      *time.Time     `json:"startDate,omitempty"`
	EndDate        *time.Time     `json:"endDate,omitempty"`
}

// UpdateCampaignStatusRequest moves a campaign through its lifecycle.
type UpdateCampaignStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active paused completed"`
}
