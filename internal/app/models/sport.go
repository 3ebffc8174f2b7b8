package models

import "time"

// SkillLevelFees holds the per-tier monthly fee amounts for a sport.
type SkillLevelFees struct {
	Beginner     float64 `json:"beginner"`
	Intermediate float64 `json:"intermediate"`
	Advanced     float64 `json:"advanced"`
}

// FeeStructure describes how fees are charged for a sport. Every sport
// carries all three skill tiers.
type FeeStructure struct {
	BaseAmount  float64        `json:"baseAmount"`
	SkillLevels SkillLevelFees `json:"skillLevels"`
}

// AmountFor returns the fee for a skill level, falling back to the base
// amount when the tier is unset.
func (f FeeStructure) AmountFor(level SkillLevel) float64 {
	var amount float64
	switch level {
	case SkillBeginner:
		amount = f.SkillLevels.Beginner
	case SkillIntermediate:
		amount = f.SkillLevels.Intermediate
	case SkillAdvanced:
		amount = f.SkillLevels.Advanced
	}
	if amount <= 0 {
		return f.BaseAmount
	}
	return amount
}

// Sport defines the sport model based on the 'sports' table
type Sport struct {
	ID           int64        `json:"id" db:"id"`
	Name         string       `json:"name" db:"name" example:"Cricket"`
	Description  *string      `json:"description,omitempty" db:"description"`
	FeeStructure FeeStructure `json:"feeStructure" db:"fee_structure"`
	IsActive     bool         `json:"isActive" db:"is_active"`
	CreatedAt    time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time    `json:"updatedAt" db:"updated_at"`
}
