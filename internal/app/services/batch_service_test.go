package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecomputeCapacitiesRestoresCounters(t *testing.T) {
	env := newTestEnv(t)
	sport := env.seedSport(t, "Cricket")
	coach := env.seedCoach(t, "Rajesh Kumar")
	morning := env.seedBatch(t, sport.ID, coach.ID, 10)
	evening := env.seedBatch(t, sport.ID, coach.ID, 10)

	env.seedStudent(t, "STU001", sport.ID, morning.ID)
	env.seedStudent(t, "STU002", sport.ID, morning.ID)
	env.seedStudent(t, "STU003", sport.ID, evening.ID)

	// Counters drifted out from under the enrollment bookkeeping, e.g. by a
	// manual data fix.
	env.store.SetBatchCapacity(morning.ID, 7)
	env.store.SetBatchCapacity(evening.ID, 0)

	got, err := env.BatchService.GetBatch(env.ctx, morning.ID)
	require.NoError(t, err)
	require.Equal(t, 7, got.CurrentCapacity)

	require.NoError(t, env.BatchService.RecomputeCapacities(env.ctx))

	for _, batch := range []struct {
		id   int64
		want int
	}{
		{morning.ID, 2},
		{evening.ID, 1},
	} {
		got, err := env.BatchService.GetBatch(env.ctx, batch.id)
		require.NoError(t, err)
		assert.Equal(t, batch.want, got.CurrentCapacity)

		count, err := env.repos.StudentRepository.CountActiveByBatch(env.ctx, batch.id)
		require.NoError(t, err)
		assert.Equal(t, count, got.CurrentCapacity)
	}
}

func TestRecomputeCapacitiesAfterDeactivation(t *testing.T) {
	env := newTestEnv(t)
	sport := env.seedSport(t, "Cricket")
	coach := env.seedCoach(t, "Rajesh Kumar")
	batch := env.seedBatch(t, sport.ID, coach.ID, 5)

	s1 := env.seedStudent(t, "STU001", sport.ID, batch.ID)
	env.seedStudent(t, "STU002", sport.ID, batch.ID)
	require.NoError(t, env.StudentService.DeactivateStudent(env.ctx, s1.ID))

	// Recompute on an already consistent counter is a no-op.
	require.NoError(t, env.BatchService.RecomputeCapacities(env.ctx))

	got, err := env.BatchService.GetBatch(env.ctx, batch.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.CurrentCapacity)

	count, err := env.repos.StudentRepository.CountActiveByBatch(env.ctx, batch.ID)
	require.NoError(t, err)
	assert.Equal(t, count, got.CurrentCapacity)
}
