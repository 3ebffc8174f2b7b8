// Package services contains the business logic layer. Services validate
// domain rules, enforce invariants and coordinate repositories; they never
// touch HTTP concerns.
package services

import (
	"github.com/psanashik/academy/internal/app/aggregate"
	"github.com/psanashik/academy/internal/app/repositories"
	"github.com/psanashik/academy/internal/pkg/auth"
)

// Services bundles all service implementations for dependency injection.
type Services struct {
	AuthService          AuthService
	UserService          UserService
	StudentService       StudentService
	CoachService         CoachService
	SportService         SportService
	BatchService         BatchService
	FeeService           FeeService
	AttendanceService    AttendanceService
	CommunicationService CommunicationService
	CampaignService      CampaignService
	BadgeService         BadgeService
	GPSService           GPSService
	SettingService       SettingService
	DashboardService     DashboardService
}

// NewServices wires every service over the given repository set.
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, policy aggregate.AttendancePolicy) *Services {
	return &Services{
		AuthService:          NewAuthService(repos.UserRepository, repos.TokenRepository, jwtService),
		UserService:          NewUserService(repos.UserRepository, repos.TokenRepository),
		StudentService:       NewStudentService(repos.StudentRepository, repos.BatchRepository, repos.SportRepository),
		CoachService:         NewCoachService(repos.CoachRepository),
		SportService:         NewSportService(repos.SportRepository),
		BatchService:         NewBatchService(repos.BatchRepository, repos.SportRepository, repos.CoachRepository),
		FeeService:           NewFeeService(repos.PaymentRepository, repos.StudentRepository, repos.SportRepository),
		AttendanceService:    NewAttendanceService(repos.AttendanceRepository, repos.StudentRepository, repos.BatchRepository, policy),
		CommunicationService: NewCommunicationService(repos.CommunicationRepository),
		CampaignService:      NewCampaignService(repos.CampaignRepository),
		BadgeService:         NewBadgeService(repos.BadgeRepository, repos.StudentRepository),
		GPSService:           NewGPSService(repos.GPSRepository),
		SettingService:       NewSettingService(repos.SettingRepository),
		DashboardService: NewDashboardService(
			repos.StudentRepository,
			repos.CoachRepository,
			repos.SportRepository,
			repos.BatchRepository,
			repos.PaymentRepository,
			repos.AttendanceRepository,
			policy,
		),
	}
}
