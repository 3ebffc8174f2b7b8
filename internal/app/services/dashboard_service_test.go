package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psanashik/academy/internal/app/models/dto"
)

func TestDashboardStats(t *testing.T) {
	env := newTestEnv(t)
	cricket := env.seedSport(t, "Cricket")
	football := env.seedSport(t, "Football")
	coach := env.seedCoach(t, "Rajesh Kumar")
	cricketBatch := env.seedBatch(t, cricket.ID, coach.ID, 10)
	footballBatch := env.seedBatch(t, football.ID, coach.ID, 10)

	s1 := env.seedStudent(t, "STU001", cricket.ID, cricketBatch.ID)
	env.seedStudent(t, "STU002", cricket.ID, cricketBatch.ID)
	env.seedStudent(t, "STU003", football.ID, footballBatch.ID)

	// One payment collected this month, one overdue.
	paid, err := env.FeeService.CreatePayment(env.ctx, &dto.CreatePaymentRequest{
		StudentID: s1.ID, Amount: 2000, PaymentType: "monthly",
		PaymentMethod: "cash", MonthYear: time.Now().Format("2006-01"),
	})
	require.NoError(t, err)
	_, err = env.FeeService.RecordPayment(env.ctx, paid.ID, &dto.RecordFeePaymentRequest{PaymentMethod: "upi"})
	require.NoError(t, err)

	_, err = env.FeeService.CreatePayment(env.ctx, &dto.CreatePaymentRequest{
		StudentID: s1.ID, Amount: 1500, PaymentType: "monthly",
		PaymentMethod: "cash", MonthYear: "2024-12",
		DueDate: timePtr(time.Now().AddDate(0, -1, 0)),
	})
	require.NoError(t, err)

	_, err = env.AttendanceService.MarkAttendance(env.ctx, &dto.MarkAttendanceRequest{
		StudentID: s1.ID, BatchID: cricketBatch.ID, Date: time.Now(), Status: "present",
	}, nil)
	require.NoError(t, err)

	stats, err := env.DashboardService.GetStats(env.ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalStudents)
	assert.Equal(t, 1, stats.ActiveCoaches)
	assert.Equal(t, 2, stats.TotalSports)
	assert.Equal(t, 2, stats.ActiveBatches)
	assert.Equal(t, 2000.0, stats.MonthlyRevenue)
	assert.Equal(t, 1500.0, stats.PendingFees)
	assert.Equal(t, 1, stats.OverduePayments)
	assert.Equal(t, 100.0, stats.AttendanceRate)

	assert.Equal(t, 2, stats.BatchStats.TotalBatches)
	assert.Equal(t, 3, stats.BatchStats.TotalStudents)

	require.Len(t, stats.SportsDistribution, 2)
	assert.Equal(t, "Cricket", stats.SportsDistribution[0].Name)
	assert.Equal(t, 2, stats.SportsDistribution[0].Students)

	assert.Len(t, stats.RevenueTrend, 6)
	assert.Len(t, stats.AttendanceTrend, 7)
}

func TestDashboardStatsEmpty(t *testing.T) {
	env := newTestEnv(t)

	stats, err := env.DashboardService.GetStats(env.ctx)
	require.NoError(t, err)

	// Empty datasets produce zeros, never NaN or errors.
	assert.Zero(t, stats.TotalStudents)
	assert.Zero(t, stats.MonthlyRevenue)
	assert.Zero(t, stats.AttendanceRate)
	assert.Zero(t, stats.BatchStats.AvgCapacity)
	assert.Empty(t, stats.SportsDistribution)
}
