package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psanashik/academy/internal/app/models"
)

func date(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestDeriveFeeStatus(t *testing.T) {
	now := *date("2025-01-20")

	tests := []struct {
		name     string
		paidDate *time.Time
		dueDate  *time.Time
		want     models.FeeStatus
	}{
		{name: "paid date set", paidDate: date("2025-01-15"), dueDate: date("2025-01-31"), want: models.FeePaid},
		{name: "paid even when overdue", paidDate: date("2025-01-15"), dueDate: date("2024-12-01"), want: models.FeePaid},
		{name: "past due unpaid", dueDate: date("2024-12-01"), want: models.FeeOverdue},
		{name: "future due unpaid", dueDate: date("2025-03-01"), want: models.FeePending},
		{name: "no dates at all", want: models.FeePending},
		{name: "due today is not overdue", dueDate: date("2025-01-20"), want: models.FeePending},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveFeeStatus(tt.paidDate, tt.dueDate, now)
			assert.Equal(t, tt.want, got)

			// Re-deriving from the same triple must yield the same bucket.
			assert.Equal(t, got, DeriveFeeStatus(tt.paidDate, tt.dueDate, now))
		})
	}
}

func TestSummarizeFees(t *testing.T) {
	now := *date("2025-01-20")

	payments := []*models.Payment{
		{Amount: 2000, PaidDate: date("2025-01-15"), DueDate: date("2025-01-31")},
		{Amount: 2200, DueDate: date("2024-12-01")},
		{Amount: 1800, DueDate: date("2025-03-01")},
	}

	s := SummarizeFees(payments, now)
	assert.Equal(t, 1, s.PaidCount)
	assert.Equal(t, 1, s.OverdueCount)
	assert.Equal(t, 1, s.PendingCount)
	assert.Equal(t, 2000.0, s.TotalPaid)
	assert.Equal(t, 2200.0, s.TotalOverdue)
	assert.Equal(t, 1800.0, s.TotalPending)
	assert.Equal(t, s.TotalPaid+s.TotalPending+s.TotalOverdue, s.TotalAmount)
}

func TestSummarizeFeesEmpty(t *testing.T) {
	s := SummarizeFees(nil, time.Now())
	assert.Zero(t, s.TotalAmount)
	assert.Zero(t, s.PaidCount+s.PendingCount+s.OverdueCount)
}

func TestSummarizeFeesIgnoresStoredStatus(t *testing.T) {
	now := *date("2025-01-20")

	// Stored status says pending but the paid date is set; derivation wins.
	payments := []*models.Payment{
		{Amount: 1000, Status: models.FeePending, PaidDate: date("2025-01-10")},
	}
	s := SummarizeFees(payments, now)
	assert.Equal(t, 1, s.PaidCount)
	assert.Equal(t, 1000.0, s.TotalPaid)
}

func TestMonthlyRevenue(t *testing.T) {
	now := *date("2025-01-25")
	payments := []*models.Payment{
		{Amount: 2000, PaidDate: date("2025-01-15")},
		{Amount: 1500, PaidDate: date("2025-01-20")},
		{Amount: 3000, PaidDate: date("2024-12-10")}, // previous month
		{Amount: 9999, DueDate: date("2025-01-31")},  // unpaid
	}

	assert.Equal(t, 3500.0, MonthlyRevenue(payments, now, now))
	assert.Equal(t, 3000.0, MonthlyRevenue(payments, *date("2024-12-01"), now))
}

func TestRevenueTrend(t *testing.T) {
	now := *date("2025-01-25")
	payments := []*models.Payment{
		{Amount: 1000, PaidDate: date("2024-12-05")},
		{Amount: 1500, PaidDate: date("2025-01-05")},
	}

	points := RevenueTrend(payments, now, 3)
	require.Len(t, points, 3)

	assert.Equal(t, "2024-11", points[0].Month)
	assert.Equal(t, 0.0, points[0].Revenue)

	assert.Equal(t, "2024-12", points[1].Month)
	assert.Equal(t, 1000.0, points[1].Revenue)
	// Previous month had zero revenue, growth stays 0 instead of dividing by zero.
	assert.Equal(t, 0.0, points[1].Growth)

	assert.Equal(t, "2025-01", points[2].Month)
	assert.Equal(t, 1500.0, points[2].Revenue)
	assert.Equal(t, 50.0, points[2].Growth)
}
