package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psanashik/academy/internal/app/models"
	"github.com/psanashik/academy/internal/app/models/dto"
	"github.com/psanashik/academy/internal/app/repositories"
	"github.com/psanashik/academy/internal/pkg/apperrors"
)

func TestMarkAttendance(t *testing.T) {
	env := newTestEnv(t)
	sport := env.seedSport(t, "Cricket")
	coach := env.seedCoach(t, "Rajesh Kumar")
	batch := env.seedBatch(t, sport.ID, coach.ID, 10)
	student := env.seedStudent(t, "STU001", sport.ID, batch.ID)

	record, err := env.AttendanceService.MarkAttendance(env.ctx, &dto.MarkAttendanceRequest{
		StudentID: student.ID,
		BatchID:   batch.ID,
		Date:      time.Now(),
		Status:    "present",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, models.AttendancePresent, record.Status)

	// Marking the same day again is a conflict; corrections go through
	// the update path instead.
	_, err = env.AttendanceService.MarkAttendance(env.ctx, &dto.MarkAttendanceRequest{
		StudentID: student.ID,
		BatchID:   batch.ID,
		Date:      time.Now(),
		Status:    "absent",
	}, nil)
	assert.ErrorIs(t, err, apperrors.ErrAttendanceAlreadyMarked)

	updated, err := env.AttendanceService.UpdateRecord(env.ctx, record.ID, &dto.UpdateAttendanceRequest{
		Status: "late",
	})
	require.NoError(t, err)
	assert.Equal(t, models.AttendanceLate, updated.Status)
}

func TestMarkAttendanceWrongBatch(t *testing.T) {
	env := newTestEnv(t)
	sport := env.seedSport(t, "Cricket")
	coach := env.seedCoach(t, "Rajesh Kumar")
	batch := env.seedBatch(t, sport.ID, coach.ID, 10)
	other := env.seedBatch(t, sport.ID, coach.ID, 10)
	student := env.seedStudent(t, "STU001", sport.ID, batch.ID)

	_, err := env.AttendanceService.MarkAttendance(env.ctx, &dto.MarkAttendanceRequest{
		StudentID: student.ID,
		BatchID:   other.ID,
		Date:      time.Now(),
		Status:    "present",
	}, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestListAttendanceSummary(t *testing.T) {
	env := newTestEnv(t)
	sport := env.seedSport(t, "Cricket")
	coach := env.seedCoach(t, "Rajesh Kumar")
	batch := env.seedBatch(t, sport.ID, coach.ID, 10)

	statuses := []string{"present", "absent", "late"}
	for i, status := range statuses {
		student := env.seedStudent(t, "STU00"+string(rune('1'+i)), sport.ID, batch.ID)
		_, err := env.AttendanceService.MarkAttendance(env.ctx, &dto.MarkAttendanceRequest{
			StudentID: student.ID,
			BatchID:   batch.ID,
			Date:      time.Now(),
			Status:    status,
		}, nil)
		require.NoError(t, err)
	}

	records, summary, err := env.AttendanceService.ListAttendance(env.ctx, repositories.AttendanceFilter{BatchID: batch.ID})
	require.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, 3, summary.TotalMarked)
	assert.Equal(t, 1, summary.PresentCount)
	assert.Equal(t, 1, summary.AbsentCount)
	assert.Equal(t, 1, summary.LateCount)
	// Late does not count as present under the default policy.
	assert.Equal(t, 33.3, summary.Rate)
}
