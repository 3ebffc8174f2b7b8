package dto

import (
	"time"

	"github.com/psanashik/academy/internal/app/aggregate"
	"github.com/psanashik/academy/internal/app/models"
)

// MarkAttendanceRequest is the payload for POST /api/attendance
type MarkAttendanceRequest struct {
	StudentID   int64      `json:"studentId" binding:"required,gt=0"`
	BatchID     int64      `json:"batchId" binding:"required,gt=0"`
	Date        time.Time  `json:"date" binding:"required"`
	Status      string     `json:"status" binding:"required,oneof=present absent late"`
	CheckInTime *time.Time `json:"checkInTime,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
}

// UpdateAttendanceRequest is the payload for PUT /api/attendance/:id
type UpdateAttendanceRequest struct {
	Status      string     `json:"status" binding:"required,oneof=present absent late"`
	CheckInTime *time.Time `json:"checkInTime,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
}

// AttendanceListResponse is the payload for GET /api/attendance
type AttendanceListResponse struct {
	Records []*models.Attendance        `json:"records"`
	Summary aggregate.AttendanceSummary `json:"summary"`
}
