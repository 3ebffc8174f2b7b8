package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/psanashik/academy/internal/app/models"
)

func TestSummarizeBatchesEmpty(t *testing.T) {
	s := SummarizeBatches(nil)
	assert.Equal(t, 0, s.TotalBatches)
	assert.Equal(t, 0, s.AvgCapacity)
	assert.Equal(t, 0, s.TotalStudents)
}

func TestSummarizeBatches(t *testing.T) {
	batches := []*models.Batch{
		{MaxCapacity: 20, CurrentCapacity: 10, IsActive: true}, // 50%
		{MaxCapacity: 10, CurrentCapacity: 10, IsActive: true}, // 100%
		{MaxCapacity: 10, CurrentCapacity: 0, IsActive: false}, // 0%
	}

	s := SummarizeBatches(batches)
	assert.Equal(t, 3, s.TotalBatches)
	assert.Equal(t, 2, s.ActiveBatches)
	assert.Equal(t, 20, s.TotalStudents)
	assert.Equal(t, 50, s.AvgCapacity) // (50+100+0)/3 = 50
}

func TestSummarizeBatchesZeroMaxCapacity(t *testing.T) {
	// A batch with max capacity 0 contributes nothing to utilization
	// rather than causing a division by zero.
	batches := []*models.Batch{
		{MaxCapacity: 0, CurrentCapacity: 0, IsActive: true},
		{MaxCapacity: 10, CurrentCapacity: 5, IsActive: true},
	}

	s := SummarizeBatches(batches)
	assert.Equal(t, 25, s.AvgCapacity)
}

func TestSportsDistribution(t *testing.T) {
	sports := []*models.Sport{
		{ID: 1, Name: "Cricket"},
		{ID: 2, Name: "Football"},
		{ID: 3, Name: "Tennis"},
	}
	students := []*models.Student{
		{SportID: 1, IsActive: true},
		{SportID: 1, IsActive: true},
		{SportID: 1, IsActive: true},
		{SportID: 2, IsActive: true},
		{SportID: 2, IsActive: false}, // inactive, excluded
	}

	shares := SportsDistribution(sports, students)
	assert.Len(t, shares, 3)

	assert.Equal(t, "Cricket", shares[0].Name)
	assert.Equal(t, 3, shares[0].Students)
	assert.Equal(t, 75.0, shares[0].Percentage)

	assert.Equal(t, "Football", shares[1].Name)
	assert.Equal(t, 25.0, shares[1].Percentage)

	assert.Equal(t, "Tennis", shares[2].Name)
	assert.Equal(t, 0, shares[2].Students)
	assert.Equal(t, 0.0, shares[2].Percentage)
}

func TestSportsDistributionNoStudents(t *testing.T) {
	sports := []*models.Sport{{ID: 1, Name: "Cricket"}}
	shares := SportsDistribution(sports, nil)
	assert.Len(t, shares, 1)
	assert.Equal(t, 0.0, shares[0].Percentage)
}
