package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psanashik/academy/internal/app/models"
)

func TestSummarizeAttendance(t *testing.T) {
	records := []*models.Attendance{
		{Status: models.AttendancePresent},
		{Status: models.AttendancePresent},
		{Status: models.AttendanceAbsent},
		{Status: models.AttendanceLate},
	}

	tests := []struct {
		name   string
		policy AttendancePolicy
		rate   float64
	}{
		{name: "late is not present", policy: AttendancePolicy{}, rate: 50.0},
		{name: "late counts as present", policy: AttendancePolicy{CountLateAsPresent: true}, rate: 75.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := SummarizeAttendance(records, tt.policy)
			assert.Equal(t, 4, s.TotalMarked)
			assert.Equal(t, 2, s.PresentCount)
			assert.Equal(t, 1, s.AbsentCount)
			assert.Equal(t, 1, s.LateCount)
			assert.Equal(t, tt.rate, s.Rate)
		})
	}
}

func TestSummarizeAttendanceEmpty(t *testing.T) {
	s := SummarizeAttendance(nil, AttendancePolicy{})
	assert.Zero(t, s.TotalMarked)
	assert.Equal(t, 0.0, s.Rate)
}

func TestSummarizeAttendanceRounding(t *testing.T) {
	// 1 present out of 3 marked: 33.333... rounds to 33.3.
	records := []*models.Attendance{
		{Status: models.AttendancePresent},
		{Status: models.AttendanceAbsent},
		{Status: models.AttendanceAbsent},
	}
	s := SummarizeAttendance(records, AttendancePolicy{})
	assert.Equal(t, 33.3, s.Rate)
}

func TestAttendanceTrend(t *testing.T) {
	now, err := time.Parse("2006-01-02", "2025-01-26")
	require.NoError(t, err)

	records := []*models.Attendance{
		{Date: now.AddDate(0, 0, -1), Status: models.AttendancePresent},
		{Date: now.AddDate(0, 0, -1), Status: models.AttendanceAbsent},
		{Date: now, Status: models.AttendancePresent},
	}

	points := AttendanceTrend(records, AttendancePolicy{}, now, 3)
	require.Len(t, points, 3)

	assert.Equal(t, "2025-01-24", points[0].Date)
	assert.Equal(t, 0.0, points[0].Rate) // no marks that day

	assert.Equal(t, "2025-01-25", points[1].Date)
	assert.Equal(t, 50.0, points[1].Rate)

	assert.Equal(t, "2025-01-26", points[2].Date)
	assert.Equal(t, 100.0, points[2].Rate)
}
