package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID          int64      `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Name        string     `json:"name" db:"name" example:"Admin User"`                      // Display name
	Email       string     `json:"email" db:"email" example:"admin@psa-nashik.com"`          // Email address (unique)
	Phone       string     `json:"phone" db:"phone" example:"+919812345678"`                 // Phone number (unique)
	Password    string     `json:"-" db:"password"`                                          // Hashed password (excluded from JSON)
	Role        RoleType   `json:"role" db:"role" example:"admin"`                           // student, coach, admin, staff, manager
	Permissions []string   `json:"permissions" db:"permissions"`                             // Permission keys granted to the user
	IsActive    bool       `json:"isActive" db:"is_active" example:"true"`                   // Whether the account is active
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty" db:"last_login"`                    // Timestamp of the last login (nullable)
	CreatedBy   *int64     `json:"createdBy,omitempty" db:"created_by"`                      // User that created this account (nullable)
	CreatedAt   time.Time  `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Creation timestamp
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"` // Last update timestamp
}
