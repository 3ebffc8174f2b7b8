package models

import "time"

// EmergencyContact is the student's emergency contact details.
type EmergencyContact struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Relation string `json:"relation"`
}

// Student defines the student model based on the 'students' table
type Student struct {
	ID               int64             `json:"id" db:"id"`
	UserID           *int64            `json:"userId,omitempty" db:"user_id"`
	StudentID        string            `json:"studentId" db:"student_id" example:"STU001"` // Unique, pattern STU###
	Name             string            `json:"name" db:"name"`
	Phone            string            `json:"phone" db:"phone"`
	Email            *string           `json:"email,omitempty" db:"email"`
	DateOfBirth      *time.Time        `json:"dateOfBirth,omitempty" db:"date_of_birth"`
	Address          *string           `json:"address,omitempty" db:"address"`
	EmergencyContact *EmergencyContact `json:"emergencyContact,omitempty" db:"emergency_contact"`
	MedicalNotes     *string           `json:"medicalNotes,omitempty" db:"medical_notes"`
	SportID          int64             `json:"sportId" db:"sport_id"`
	BatchID          int64             `json:"batchId" db:"batch_id"`
	SkillLevel       SkillLevel        `json:"skillLevel" db:"skill_level"`
	JoiningDate      time.Time         `json:"joiningDate" db:"joining_date"`
	IsActive         bool              `json:"isActive" db:"is_active"`
	CreatedAt        time.Time         `json:"createdAt" db:"created_at"`

	// Relations (populated when needed)
	Sport *Sport `json:"sport,omitempty"`
	Batch *Batch `json:"batch,omitempty"`
}
