package dto

import "github.com/psanashik/academy/internal/app/aggregate"

// DashboardStats is the composite payload for GET /api/dashboard/stats.
// Every number is recomputed from stored records on each request.
type DashboardStats struct {
	TotalStudents   int     `json:"totalStudents"`
	ActiveCoaches   int     `json:"activeCoaches"`
	TotalSports     int     `json:"totalSports"`
	ActiveBatches   int     `json:"activeBatches"`
	MonthlyRevenue  float64 `json:"monthlyRevenue"`
	PendingFees     float64 `json:"pendingFees"`
	OverduePayments int     `json:"overduePayments"`
	AttendanceRate  float64 `json:"attendanceRate"` // today's rate

	BatchStats         aggregate.BatchStats        `json:"batchStats"`
	SportsDistribution []aggregate.SportShare      `json:"sportsDistribution"`
	RevenueTrend       []aggregate.RevenuePoint    `json:"revenueTrend"`
	AttendanceTrend    []aggregate.AttendancePoint `json:"attendanceTrend"`
}
