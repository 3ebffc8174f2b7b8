package dto

import "github.com/psanashik/academy/internal/app/models"

// CreateSportRequest is the payload for POST /api/sports. All three skill
// tiers of the fee structure must be provided.
type CreateSportRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  *string `json:"description,omitempty"`
	FeeStructure struct {
		BaseAmount  float64 `json:"baseAmount" binding:"required,gt=0"`
		SkillLevels struct {
			Beginner     float64 `json:"beginner" binding:"required,gt=0"`
			Intermediate float64 `json:"intermediate" binding:"required,gt=0"`
			Advanced     float64 `json:"advanced" binding:"required,gt=0"`
		} `json:"skillLevels" binding:"required"`
	} `json:"feeStructure" binding:"required"`
}

// FeeStructure converts the request fields into the model type.
func (r *CreateSportRequest) ToFeeStructure() models.FeeStructure {
	return models.FeeStructure{
		BaseAmount: r.FeeStructure.BaseAmount,
		SkillLevels: models.SkillLevelFees{
			Beginner:     r.FeeStructure.SkillLevels.Beginner,
			Intermediate: r.FeeStructure.SkillLevels.Intermediate,
			Advanced:     r.FeeStructure.SkillLevels.Advanced,
		},
	}
}

// CreateCoachRequest is the payload for POST /api/coaches
type CreateCoachRequest struct {
	Name           string  `json:"name" binding:"required"`
	Email          *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone          string  `json:"phone" binding:"required"`
	Specialization string  `json:"specialization" binding:"required"`
	Experience     int     `json:"experience" binding:"gte=0"`
	Qualifications *string `json:"qualifications,omitempty"`
}
