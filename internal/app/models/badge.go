package models

import "time"

// StudentBadge defines a badge definition based on the 'student_badges' table
type StudentBadge struct {
	ID          int64          `json:"id" db:"id"`
	Name        string         `json:"name" db:"name"`
	Description *string        `json:"description,omitempty" db:"description"`
	Icon        string         `json:"icon" db:"icon"`
	Criteria    map[string]any `json:"criteria,omitempty" db:"criteria"`
	Points      int            `json:"points" db:"points"`
	IsActive    bool           `json:"isActive" db:"is_active"`
	CreatedAt   time.Time      `json:"createdAt" db:"created_at"`
}

// BadgeEarning records a badge earned by a student, based on the
// 'student_badge_earnings' table
type BadgeEarning struct {
	ID        int64     `json:"id" db:"id"`
	StudentID int64     `json:"studentId" db:"student_id"`
	BadgeID   int64     `json:"badgeId" db:"badge_id"`
	EarnedAt  time.Time `json:"earnedAt" db:"earned_at"`
	Notes     *string   `json:"notes,omitempty" db:"notes"`

	// Relations (populated when needed)
	Badge *StudentBadge `json:"badge,omitempty"`
}
