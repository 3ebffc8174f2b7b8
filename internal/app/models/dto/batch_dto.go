package dto

import (
	"github.com/psanashik/academy/internal/app/aggregate"
	"github.com/psanashik/academy/internal/app/models"
)

// CreateBatchRequest is the payload for POST /api/batches
type CreateBatchRequest struct {
	Name        string               `json:"name" binding:"required"`
	SportID     int64                `json:"sportId" binding:"required,gt=0"`
	CoachID     int64                `json:"coachId" binding:"required,gt=0"`
	Schedule    models.BatchSchedule `json:"schedule" binding:"required"`
	MaxCapacity int                  `json:"maxCapacity" binding:"required,gt=0"`
	SkillLevel  string               `json:"skillLevel" binding:"required,oneof=beginner intermediate advanced"`
}

// UpdateBatchRequest is the payload for PUT /api/batches/:id
type UpdateBatchRequest struct {
	Name        string               `json:"name" binding:"required"`
	CoachID     int64                `json:"coachId" binding:"required,gt=0"`
	Schedule    models.BatchSchedule `json:"schedule" binding:"required"`
	MaxCapacity int                  `json:"maxCapacity" binding:"required,gt=0"`
	SkillLevel  string               `json:"skillLevel" binding:"required,oneof=beginner intermediate advanced"`
}

// BatchListResponse is the payload for GET /api/batches
type BatchListResponse struct {
	Batches []*models.Batch      `json:"batches"`
	Stats   aggregate.BatchStats `json:"stats"`
}
