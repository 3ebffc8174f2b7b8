package models

// RoleType represents a user's role in the academy
type RoleType string

const (
	RoleStudent RoleType = "student"
	RoleCoach   RoleType = "coach"
	RoleAdmin   RoleType = "admin"
	RoleStaff   RoleType = "staff"
	RoleManager RoleType = "manager"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r RoleType) bool {
	switch r {
	case RoleStudent, RoleCoach, RoleAdmin, RoleStaff, RoleManager:
		return true
	}
	return false
}

// SkillLevel is the beginner/intermediate/advanced tier used for both
// batch placement and fee-tier lookup.
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

// ValidSkillLevel reports whether s is one of the known skill levels.
func ValidSkillLevel(s SkillLevel) bool {
	switch s {
	case SkillBeginner, SkillIntermediate, SkillAdvanced:
		return true
	}
	return false
}

// FeeStatus is the derived bucket for a payment record.
type FeeStatus string

const (
	FeePaid    FeeStatus = "paid"
	FeePending FeeStatus = "pending"
	FeeOverdue FeeStatus = "overdue"
)

// AttendanceStatus represents a single attendance mark.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
)

// ValidAttendanceStatus reports whether s is one of the known marks.
func ValidAttendanceStatus(s AttendanceStatus) bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate:
		return true
	}
	return false
}

// CommunicationStatus tracks delivery progression of an outbound message.
type CommunicationStatus string

const (
	CommunicationPending   CommunicationStatus = "pending"
	CommunicationSent      CommunicationStatus = "sent"
	CommunicationDelivered CommunicationStatus = "delivered"
	CommunicationFailed    CommunicationStatus = "failed"
)

// CanTransitionTo reports whether the pending→sent→delivered/failed
// progression allows moving from s to next.
func (s CommunicationStatus) CanTransitionTo(next CommunicationStatus) bool {
	switch s {
	case CommunicationPending:
		return next == CommunicationSent || next == CommunicationFailed
	case CommunicationSent:
		return next == CommunicationDelivered || next == CommunicationFailed
	}
	return false
}

// CampaignStatus is the lifecycle state of a marketing campaign.
type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignActive    CampaignStatus = "active"
	CampaignPaused    CampaignStatus = "paused"
	CampaignCompleted CampaignStatus = "completed"
)

// CanTransitionTo reports whether a campaign may move from s to next.
func (s CampaignStatus) CanTransitionTo(next CampaignStatus) bool {
	switch s {
	case CampaignDraft:
		return next == CampaignActive
	case CampaignActive:
		return next == CampaignPaused || next == CampaignCompleted
	case CampaignPaused:
		return next == CampaignActive || next == CampaignCompleted
	}
	return false
}
