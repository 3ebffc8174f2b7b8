package models

import "time"

// BatchSchedule describes the weekly training slots for a batch.
type BatchSchedule struct {
	Days []string `json:"days"` // e.g. ["monday", "wednesday"]
	Time string   `json:"time"` // e.g. "6:00 AM - 7:30 AM"
}

// Batch defines the batch model based on the 'batches' table.
// currentCapacity always equals the count of active students assigned to
// the batch; it is maintained transactionally by the student service.
type Batch struct {
	ID              int64         `json:"id" db:"id"`
	Name            string        `json:"name" db:"name" example:"Cricket A"`
	SportID         int64         `json:"sportId" db:"sport_id"`
	CoachID         int64         `json:"coachId" db:"coach_id"`
	Schedule        BatchSchedule `json:"schedule" db:"schedule"`
	MaxCapacity     int           `json:"maxCapacity" db:"max_capacity"`
	CurrentCapacity int           `json:"currentCapacity" db:"current_capacity"`
	SkillLevel      SkillLevel    `json:"skillLevel" db:"skill_level"`
	IsActive        bool          `json:"isActive" db:"is_active"`
	CreatedAt       time.Time     `json:"createdAt" db:"created_at"`

	// Relations (populated when needed)
	Sport *Sport `json:"sport,omitempty"`
	Coach *Coach `json:"coach,omitempty"`
}

// HasSpace reports whether another active student fits in the batch.
func (b *Batch) HasSpace() bool {
	return b.CurrentCapacity < b.MaxCapacity
}
