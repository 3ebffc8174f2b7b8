package dto

import (
	"encoding/json"
	"time"
)

// CreateBadgeRequest is the payload for POST /api/student-badges
type CreateBadgeRequest struct {
	Name        string         `json:"name" binding:"required"`
	Description *string        `json:"description,omitempty"`
	Icon        string         `json:"icon" binding:"required"`
	Criteria    map[string]any `json:"criteria,omitempty"`
	Points      int            `json:"points" binding:"gte=0"`
}

// AwardBadgeRequest is the payload for POST /api/student-badges/:id/award
type AwardBadgeRequest struct {
	StudentID int64   `json:"studentId" binding:"required,gt=0"`
	Notes     *string `json:"notes,omitempty"`
}

// CreateGPSPingRequest is the payload for POST /api/gps-tracking
type CreateGPSPingRequest struct {
	UserID    int64      `json:"userId" binding:"required,gt=0"`
	Latitude  float64    `json:"latitude" binding:"required,gte=-90,lte=90"`
	Longitude float64    `json:"longitude" binding:"required,gte=-180,lte=180"`
	Accuracy  float64    `json:"accuracy" binding:"gte=0"`
	Timestamp *time.Time `json:"timestamp,omitempty"` // defaults to now
	Activity  *string    `json:"activity,omitempty" binding:"omitempty,oneof=arriving departing training"`
	Location  *string    `json:"location,omitempty" binding:"omitempty,oneof=academy home transit"`
}

// UpsertSettingRequest is the payload for POST /api/settings and
// PUT /api/settings/:key
type UpsertSettingRequest struct {
	Key         string          `json:"key" binding:"required"`
	Value       json.RawMessage `json:"value" binding:"required"`
	Description *string         `json:"description,omitempty"`
	Category    string          `json:"category" binding:"required,oneof=general payment notification security"`
}

// CreateUserRequest is the payload for POST /api/user-management
type CreateUserRequest struct {
	Name        string   `json:"name" binding:"required"`
	Email       string   `json:"email" binding:"required,email"`
	Phone       string   `json:"phone" binding:"required"`
	Password    string   `json:"password" binding:"required,min=8"`
	Role        string   `json:"role" binding:"required,oneof=student coach admin staff manager"`
	Permissions []string `json:"permissions,omitempty"`
}

// UpdateUserRequest is the payload for PUT /api/user-management/:id
type UpdateUserRequest struct {
	Name        string   `json:"name" binding:"required"`
	Phone       string   `json:"phone" binding:"required"`
	Role        string   `json:"role" binding:"required,oneof=student coach admin staff manager"`
	Permissions []string `json:"permissions,omitempty"`
	IsActive    *bool    `json:"isActive,omitempty"`
}
