// Package aggregate holds the read-side computations over academy records.
// Every function is pure and deterministic: it takes a snapshot of entities
// and a clock value, and returns derived numbers without touching storage.
package aggregate

import (
	"time"

	"github.com/psanashik/academy/internal/app/models"
)

// FeeSummary is the aggregate returned alongside fee listings.
type FeeSummary struct {
	TotalPaid    float64 `json:"totalPaid"`
	TotalPending float64 `json:"totalPending"`
	TotalOverdue float64 `json:"totalOverdue"`
	TotalAmount  float64 `json:"totalAmount"`
	PaidCount    int     `json:"paidCount"`
	PendingCount int     `json:"pendingCount"`
	OverdueCount int     `json:"overdueCount"`
}

// DeriveFeeStatus buckets a payment from its dates. A set paid date wins,
// a due date in the past means overdue, anything else is pending. The
// stored status column is deliberately ignored so the two can never drift.
func DeriveFeeStatus(paidDate, dueDate *time.Time, now time.Time) models.FeeStatus {
	if paidDate != nil && !paidDate.IsZero() {
		return models.FeePaid
	}
	if dueDate != nil && !dueDate.IsZero() && dueDate.Before(now) {
		return models.FeeOverdue
	}
	return models.FeePending
}

// SummarizeFees partitions payments by derived status and sums amounts per
// partition. TotalAmount always equals TotalPaid+TotalPending+TotalOverdue.
func SummarizeFees(payments []*models.Payment, now time.Time) FeeSummary {
	var s FeeSummary
	for _, p := range payments {
		switch DeriveFeeStatus(p.PaidDate, p.DueDate, now) {
		case models.FeePaid:
			s.TotalPaid += p.Amount
			s.PaidCount++
		case models.FeeOverdue:
			s.TotalOverdue += p.Amount
			s.OverdueCount++
		default:
			s.TotalPending += p.Amount
			s.PendingCount++
		}
	}
	s.TotalAmount = s.TotalPaid + s.TotalPending + s.TotalOverdue
	return s
}

// MonthlyRevenue sums amounts of payments paid within the given month.
func MonthlyRevenue(payments []*models.Payment, month time.Time, now time.Time) float64 {
	var total float64
	for _, p := range payments {
		if DeriveFeeStatus(p.PaidDate, p.DueDate, now) != models.FeePaid {
			continue
		}
		if p.PaidDate.Year() == month.Year() && p.PaidDate.Month() == month.Month() {
			total += p.Amount
		}
	}
	return total
}

// RevenuePoint is one month of the revenue trend series.
type RevenuePoint struct {
	Month   string  `json:"month"`  // "2025-01"
	Revenue float64 `json:"revenue"`
	Growth  float64 `json:"growth"` // percent change vs previous month, one decimal
}

// RevenueTrend computes paid revenue for the `months` calendar months ending
// at the month containing now, with month-over-month growth percentages.
// Growth for the first point and for months following zero revenue is 0.
func RevenueTrend(payments []*models.Payment, now time.Time, months int) []RevenuePoint {
	if months <= 0 {
		return nil
	}

	points := make([]RevenuePoint, 0, months)
	for i := months - 1; i >= 0; i-- {
		m := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		points = append(points, RevenuePoint{
			Month:   m.Format("2006-01"),
			Revenue: MonthlyRevenue(payments, m, now),
		})
	}

	for i := 1; i < len(points); i++ {
		prev := points[i-1].Revenue
		if prev > 0 {
			points[i].Growth = round1((points[i].Revenue - prev) / prev * 100)
		}
	}
	return points
}
