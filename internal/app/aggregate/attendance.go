package aggregate

import (
	"time"

	"github.com/psanashik/academy/internal/app/models"
)

// AttendancePolicy controls how a "late" mark is counted when computing
// rates. The source data treats late as its own bucket; whether it counts
// toward the present numerator is an explicit configuration choice.
type AttendancePolicy struct {
	CountLateAsPresent bool
}

// AttendanceSummary is the aggregate for a filtered set of attendance marks.
type AttendanceSummary struct {
	TotalMarked  int     `json:"totalMarked"`
	PresentCount int     `json:"presentCount"`
	AbsentCount  int     `json:"absentCount"`
	LateCount    int     `json:"lateCount"`
	Rate         float64 `json:"rate"` // percent, one decimal; 0 for an empty set
}

// SummarizeAttendance counts marks per status and computes the attendance
// rate under the given policy.
func SummarizeAttendance(records []*models.Attendance, policy AttendancePolicy) AttendanceSummary {
	var s AttendanceSummary
	for _, r := range records {
		s.TotalMarked++
		switch r.Status {
		case models.AttendancePresent:
			s.PresentCount++
		case models.AttendanceAbsent:
			s.AbsentCount++
		case models.AttendanceLate:
			s.LateCount++
		}
	}

	if s.TotalMarked == 0 {
		return s
	}

	numerator := s.PresentCount
	if policy.CountLateAsPresent {
		numerator += s.LateCount
	}
	s.Rate = round1(float64(numerator) / float64(s.TotalMarked) * 100)
	return s
}

// AttendancePoint is one day of the attendance trend series.
type AttendancePoint struct {
	Date string  `json:"date"` // "2025-01-26"
	Rate float64 `json:"rate"`
}

// AttendanceTrend computes per-day attendance rates for the `days` calendar
// days ending at the day containing now. Days without marks report a zero
// rate.
func AttendanceTrend(records []*models.Attendance, policy AttendancePolicy, now time.Time, days int) []AttendancePoint {
	if days <= 0 {
		return nil
	}

	byDay := make(map[string][]*models.Attendance)
	for _, r := range records {
		key := r.Date.Format("2006-01-02")
		byDay[key] = append(byDay[key], r)
	}

	points := make([]AttendancePoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		key := day.Format("2006-01-02")
		summary := SummarizeAttendance(byDay[key], policy)
		points = append(points, AttendancePoint{Date: key, Rate: summary.Rate})
	}
	return points
}
