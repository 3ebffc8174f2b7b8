package services

import (
	"context"
	"time"

	"github.com/psanashik/academy/internal/app/aggregate"
	"github.com/psanashik/academy/internal/app/models"
	"github.com/psanashik/academy/internal/app/models/dto"
	"github.com/psanashik/academy/internal/app/repositories"
	"github.com/psanashik/academy/internal/pkg/helpers"
)

const (
	revenueTrendMonths  = 6
	attendanceTrendDays = 7
)

// DashboardService recomputes every dashboard figure from stored records
// on each request; nothing is cached or precomputed.
type DashboardService interface {
	GetStats(ctx context.Context) (*dto.DashboardStats, error)
}

type dashboardService struct {
	studentRepo    repositories.StudentRepository
	coachRepo      repositories.CoachRepository
	sportRepo      repositories.SportRepository
	batchRepo      repositories.BatchRepository
	paymentRepo    repositories.PaymentRepository
	attendanceRepo repositories.AttendanceRepository
	policy         aggregate.AttendancePolicy
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	studentRepo repositories.StudentRepository,
	coachRepo repositories.CoachRepository,
	sportRepo repositories.SportRepository,
	batchRepo repositories.BatchRepository,
	paymentRepo repositories.PaymentRepository,
	attendanceRepo repositories.AttendanceRepository,
	policy aggregate.AttendancePolicy,
) DashboardService {
	return &dashboardService{
		studentRepo:    studentRepo,
		coachRepo:      coachRepo,
		sportRepo:      sportRepo,
		batchRepo:      batchRepo,
		paymentRepo:    paymentRepo,
		attendanceRepo: attendanceRepo,
		policy:         policy,
	}
}

// GetStats assembles the dashboard aggregate from live data
func (s *dashboardService) GetStats(ctx context.Context) (*dto.DashboardStats, error) {
	now := time.Now()

	students, err := s.studentRepo.List(ctx, repositories.StudentFilter{})
	if err != nil {
		return nil, err
	}
	coaches, err := s.coachRepo.List(ctx, false)
	if err != nil {
		return nil, err
	}
	sports, err := s.sportRepo.List(ctx, false)
	if err != nil {
		return nil, err
	}
	batches, err := s.batchRepo.List(ctx, false)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.List(ctx, repositories.PaymentFilter{})
	if err != nil {
		return nil, err
	}

	today := helpers.StartOfDay(now)
	todayRecords, err := s.attendanceRepo.List(ctx, repositories.AttendanceFilter{Date: &today})
	if err != nil {
		return nil, err
	}

	trendFrom := helpers.StartOfDay(now.AddDate(0, 0, -(attendanceTrendDays - 1)))
	trendRecords, err := s.attendanceRepo.List(ctx, repositories.AttendanceFilter{From: &trendFrom})
	if err != nil {
		return nil, err
	}

	feeSummary := aggregate.SummarizeFees(payments, now)
	overdueCount := 0
	for _, payment := range payments {
		if aggregate.DeriveFeeStatus(payment.PaidDate, payment.DueDate, now) == models.FeeOverdue {
			overdueCount++
		}
	}

	return &dto.DashboardStats{
		TotalStudents:      len(students),
		ActiveCoaches:      len(coaches),
		TotalSports:        len(sports),
		ActiveBatches:      len(batches),
		MonthlyRevenue:     aggregate.MonthlyRevenue(payments, now, now),
		PendingFees:        feeSummary.TotalPending + feeSummary.TotalOverdue,
		OverduePayments:    overdueCount,
		AttendanceRate:     aggregate.SummarizeAttendance(todayRecords, s.policy).Rate,
		BatchStats:         aggregate.SummarizeBatches(batches),
		SportsDistribution: aggregate.SportsDistribution(sports, students),
		RevenueTrend:       aggregate.RevenueTrend(payments, now, revenueTrendMonths),
		AttendanceTrend:    aggregate.AttendanceTrend(trendRecords, s.policy, now, attendanceTrendDays),
	}, nil
}
