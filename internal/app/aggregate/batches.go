package aggregate

import (
	"math"
	"sort"

	"github.com/psanashik/academy/internal/app/models"
)

// BatchStats is the capacity overview across a set of batches.
type BatchStats struct {
	TotalBatches  int `json:"totalBatches"`
	ActiveBatches int `json:"activeBatches"`
	TotalStudents int `json:"totalStudents"` // sum of current capacity
	AvgCapacity   int `json:"avgCapacity"`   // mean utilization percentage, rounded
}

// SummarizeBatches computes capacity statistics. An empty input yields the
// zero value, never a division by zero.
func SummarizeBatches(batches []*models.Batch) BatchStats {
	var s BatchStats
	s.TotalBatches = len(batches)
	if len(batches) == 0 {
		return s
	}

	var utilizationSum float64
	for _, b := range batches {
		if b.IsActive {
			s.ActiveBatches++
		}
		s.TotalStudents += b.CurrentCapacity
		if b.MaxCapacity > 0 {
			utilizationSum += float64(b.CurrentCapacity) / float64(b.MaxCapacity) * 100
		}
	}
	s.AvgCapacity = int(math.Round(utilizationSum / float64(len(batches))))
	return s
}

// SportShare is one sport's slice of the enrollment distribution.
type SportShare struct {
	SportID    int64   `json:"sportId"`
	Name       string  `json:"name"`
	Students   int     `json:"students"`
	Percentage float64 `json:"percentage"` // one decimal
}

// SportsDistribution groups active students by sport. Sports with no
// enrollment are included with a zero share; ordering is by student count
// descending, then name for stability.
func SportsDistribution(sports []*models.Sport, students []*models.Student) []SportShare {
	counts := make(map[int64]int)
	var total int
	for _, st := range students {
		if !st.IsActive {
			continue
		}
		counts[st.SportID]++
		total++
	}

	shares := make([]SportShare, 0, len(sports))
	for _, sp := range sports {
		share := SportShare{SportID: sp.ID, Name: sp.Name, Students: counts[sp.ID]}
		if total > 0 {
			share.Percentage = round1(float64(share.Students) / float64(total) * 100)
		}
		shares = append(shares, share)
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Students != shares[j].Students {
			return shares[i].Students > shares[j].Students
		}
		return shares[i].Name < shares[j].Name
	})
	return shares
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
