package models

import "time"

// Coach defines the coach model based on the 'coaches' table
type Coach struct {
	ID             int64     `json:"id" db:"id"`
	Name           string    `json:"name" db:"name" example:"Rajesh Kumar"`
	Email          *string   `json:"email,omitempty" db:"email"`
	Phone          string    `json:"phone" db:"phone"`
	Specialization string    `json:"specialization" db:"specialization" example:"Cricket"`
	Experience     int       `json:"experience" db:"experience"` // Years of coaching experience
	Qualifications *string   `json:"qualifications,omitempty" db:"qualifications"`
	IsActive       bool      `json:"isActive" db:"is_active"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}
