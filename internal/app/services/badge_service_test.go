package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psanashik/academy/internal/app/models/dto"
	"github.com/psanashik/academy/internal/pkg/apperrors"
)

func TestAwardBadge(t *testing.T) {
	env := newTestEnv(t)
	sport := env.seedSport(t, "Cricket")
	coach := env.seedCoach(t, "Rajesh Kumar")
	batch := env.seedBatch(t, sport.ID, coach.ID, 10)
	student := env.seedStudent(t, "STU001", sport.ID, batch.ID)

	badge, err := env.BadgeService.CreateBadge(env.ctx, &dto.CreateBadgeRequest{
		Name:   "Perfect Attendance",
		Icon:   "trophy",
		Points: 50,
	})
	require.NoError(t, err)

	earning, err := env.BadgeService.AwardBadge(env.ctx, badge.ID, &dto.AwardBadgeRequest{
		StudentID: student.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, badge.ID, earning.BadgeID)
	assert.False(t, earning.EarnedAt.IsZero())

	// A badge can be earned once per student.
	_, err = env.BadgeService.AwardBadge(env.ctx, badge.ID, &dto.AwardBadgeRequest{
		StudentID: student.ID,
	})
	assert.ErrorIs(t, err, apperrors.ErrBadgeAlreadyEarned)

	earned, err := env.BadgeService.ListStudentBadges(env.ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, earned, 1)
	require.NotNil(t, earned[0].Badge)
	assert.Equal(t, "Perfect Attendance", earned[0].Badge.Name)
}

func TestAwardBadgeUnknownTargets(t *testing.T) {
	env := newTestEnv(t)
	sport := env.seedSport(t, "Cricket")
	coach := env.seedCoach(t, "Rajesh Kumar")
	batch := env.seedBatch(t, sport.ID, coach.ID, 10)
	student := env.seedStudent(t, "STU001", sport.ID, batch.ID)

	_, err := env.BadgeService.AwardBadge(env.ctx, 999, &dto.AwardBadgeRequest{StudentID: student.ID})
	assert.ErrorIs(t, err, apperrors.ErrBadgeNotFound)

	badge, err := env.BadgeService.CreateBadge(env.ctx, &dto.CreateBadgeRequest{
		Name: "Rising Star", Icon: "star",
	})
	require.NoError(t, err)

	_, err = env.BadgeService.AwardBadge(env.ctx, badge.ID, &dto.AwardBadgeRequest{StudentID: 999})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}
