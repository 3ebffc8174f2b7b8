package dto

import (
	"time"

	"github.com/psanashik/academy/internal/app/models"
)

// CreateStudentRequest is the payload for POST /api/students
type CreateStudentRequest struct {
	StudentID        string                   `json:"studentId" binding:"required" example:"STU001"`
	Name             string                   `json:"name" binding:"required"`
	Phone            string                   `json:"phone" binding:"required"`
	Email            *string                  `json:"email,omitempty" binding:"omitempty,email"`
	DateOfBirth      *time.Time               `json:"dateOfBirth,omitempty"`
	Address          *string                  `json:"address,omitempty"`
	EmergencyContact *models.EmergencyContact `json:"emergencyContact,omitempty"`
	MedicalNotes     *string                  `json:"medicalNotes,omitempty"`
	SportID          int64                    `json:"sportId" binding:"required,gt=0"`
	BatchID          int64                    `json:"batchId" binding:"required,gt=0"`
	SkillLevel       string                   `json:"skillLevel" binding:"required,oneof=beginner intermediate advanced"`
}

// UpdateStudentRequest is the payload for PUT /api/students/:id. A changed
// BatchID is treated as a transfer between batches.
type UpdateStudentRequest struct {
	Name             string                   `json:"name" binding:"required"`
	Phone            string                   `json:"phone" binding:"required"`
	Email            *string                  `json:"email,omitempty" binding:"omitempty,email"`
	Address          *string                  `json:"address,omitempty"`
	EmergencyContact *models.EmergencyContact `json:"emergencyContact,omitempty"`
	MedicalNotes     *string                  `json:"medicalNotes,omitempty"`
	BatchID          int64                    `json:"batchId" binding:"required,gt=0"`
	SkillLevel       string                   `json:"skillLevel" binding:"required,oneof=beginner intermediate advanced"`
}

// StudentListResponse is the payload for GET /api/students
type StudentListResponse struct {
	Students   []*models.Student `json:"students"`
	Pagination PaginationInfo    `json:"pagination"`
}
