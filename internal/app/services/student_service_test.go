package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psanashik/academy/internal/app/models/dto"
	"github.com/psanashik/academy/internal/app/repositories"
	"github.com/psanashik/academy/internal/pkg/apperrors"
)

func TestCreateStudentFillsBatch(t *testing.T) {
	env := newTestEnv(t)
	sport := env.seedSport(t, "Cricket")
	coach := env.seedCoach(t, "Rajesh Kumar")
	batch := env.seedBatch(t, sport.ID, coach.ID, 2)

	env.seedStudent(t, "STU001", sport.ID, batch.ID)
	env.seedStudent(t, "STU002", sport.ID, batch.ID)

	got, err := env.BatchService.GetBatch(env.ctx, batch.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.CurrentCapacity)

	// Third enrollment must fail and leave the counter untouched.
	_, err = env.StudentService.CreateStudent(env.ctx, &dto.CreateStudentRequest{
		StudentID:  "STU003",
		Name:       "Third Student",
		Phone:      "+919800000003",
		SportID:    sport.ID,
		BatchID:    batch.ID,
		SkillLevel: "beginner",
	})
	assert.ErrorIs(t, err, apperrors.ErrBatchCapacityExceeded)

	got, err = env.BatchService.GetBatch(env.ctx, batch.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.CurrentCapacity)

	_, err = env.StudentService.GetStudent(env.ctx, batch.ID+100)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestCreateStudentDuplicateID(t *testing.T) {
	env := newTestEnv(t)
	sport := env.seedSport(t, "Cricket")
	coach := env.seedCoach(t, "Rajesh Kumar")
	batch := env.seedBatch(t, sport.ID, coach.ID, 10)

	env.seedStudent(t, "STU001", sport.ID, batch.ID)

	_, err := env.StudentService.CreateStudent(env.ctx, &dto.CreateStudentRequest{
		StudentID:  "STU001",
		Name:       "Duplicate",
		Phone:      "+919800000009",
		SportID:    sport.ID,
		BatchID:    batch.ID,
		SkillLevel: "beginner",
	})
	assert.ErrorIs(t, err, apperrors.ErrStudentIDAlreadyExists)

	// The failed enrollment must not consume a slot.
	got, err := env.BatchService.GetBatch(env.ctx, batch.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.CurrentCapacity)
}

func TestCreateStudentInvalidID(t *testing.T) {
	env := newTestEnv(t)
	sport := env.seedSport(t, "Cricket")
	coach := env.seedCoach(t, "Rajesh Kumar")
	batch := env.seedBatch(t, sport.ID, coach.ID, 10)

	for _, badID := range []string{"stu001", "STU", "ABC123", "STU01"} {
		_, err := env.StudentService.CreateStudent(env.ctx, &dto.CreateStudentRequest{
			StudentID:  badID,
			Name:       "Bad ID",
			Phone:      "+919800000010",
			SportID:    sport.ID,
			BatchID:    batch.ID,
			SkillLevel: "beginner",
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidStudentID, "studentId %q", badID)
	}
}

func TestUpdateStudentTransfersBatch(t *testing.T) {
	env := newTestEnv(t)
	sport := env.seedSport(t, "Cricket")
	coach := env.seedCoach(t, "Rajesh Kumar")
	source := env.seedBatch(t, sport.ID, coach.ID, 5)
	target := env.seedBatch(t, sport.ID, coach.ID, 5)

	student := env.seedStudent(t, "STU001", sport.ID, source.ID)

	updated, err := env.StudentService.UpdateStudent(env.ctx, student.ID, &dto.UpdateStudentRequest{
		Name:       student.Name,
		Phone:      student.Phone,
		BatchID:    target.ID,
		SkillLevel: "intermediate",
	})
	require.NoError(t, err)
	assert.Equal(t, target.ID, updated.BatchID)

	gotSource, err := env.BatchService.GetBatch(env.ctx, source.ID)
	require.NoError(t, err)
	gotTarget, err := env.BatchService.GetBatch(env.ctx, target.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, gotSource.CurrentCapacity)
	assert.Equal(t, 1, gotTarget.CurrentCapacity)
}

func TestUpdateStudentTransferToFullBatch(t *testing.T) {
	env := newTestEnv(t)
	sport := env.seedSport(t, "Cricket")
	coach := env.seedCoach(t, "Rajesh Kumar")
	source := env.seedBatch(t, sport.ID, coach.ID, 5)
	target := env.seedBatch(t, sport.ID, coach.ID, 1)

	env.seedStudent(t, "STU001", sport.ID, target.ID)
	student := env.seedStudent(t, "STU002", sport.ID, source.ID)

	_, err := env.StudentService.UpdateStudent(env.ctx, student.ID, &dto.UpdateStudentRequest{
		Name:       student.Name,
		Phone:      student.Phone,
		BatchID:    target.ID,
		SkillLevel: "beginner",
	})
	assert.ErrorIs(t, err, apperrors.ErrBatchCapacityExceeded)

	// Nothing moved: the student stays in the source batch and both
	// counters are unchanged.
	got, err := env.StudentService.GetStudent(env.ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, source.ID, got.BatchID)

	gotSource, _ := env.BatchService.GetBatch(env.ctx, source.ID)
	gotTarget, _ := env.BatchService.GetBatch(env.ctx, target.ID)
	assert.Equal(t, 1, gotSource.CurrentCapacity)
	assert.Equal(t, 1, gotTarget.CurrentCapacity)
}

func TestDeactivateStudentReleasesSlot(t *testing.T) {
	env := newTestEnv(t)
	sport := env.seedSport(t, "Cricket")
	coach := env.seedCoach(t, "Rajesh Kumar")
	batch := env.seedBatch(t, sport.ID, coach.ID, 1)

	student := env.seedStudent(t, "STU001", sport.ID, batch.ID)

	require.NoError(t, env.StudentService.DeactivateStudent(env.ctx, student.ID))

	got, err := env.BatchService.GetBatch(env.ctx, batch.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.CurrentCapacity)

	// The freed slot can be taken by a new enrollment.
	env.seedStudent(t, "STU002", sport.ID, batch.ID)

	// Inactive students are excluded from default listings.
	students, err := env.StudentService.ListStudents(env.ctx, repositories.StudentFilter{})
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "STU002", students[0].StudentID)

	all, err := env.StudentService.ListStudents(env.ctx, repositories.StudentFilter{IncludeInactive: true})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestListStudentsFilters(t *testing.T) {
	env := newTestEnv(t)
	cricket := env.seedSport(t, "Cricket")
	football := env.seedSport(t, "Football")
	coach := env.seedCoach(t, "Rajesh Kumar")
	cricketBatch := env.seedBatch(t, cricket.ID, coach.ID, 10)
	footballBatch := env.seedBatch(t, football.ID, coach.ID, 10)

	env.seedStudent(t, "STU001", cricket.ID, cricketBatch.ID)
	env.seedStudent(t, "STU002", football.ID, footballBatch.ID)

	bySport, err := env.StudentService.ListStudents(env.ctx, repositories.StudentFilter{SportID: cricket.ID})
	require.NoError(t, err)
	require.Len(t, bySport, 1)
	assert.Equal(t, "STU001", bySport[0].StudentID)

	bySearch, err := env.StudentService.ListStudents(env.ctx, repositories.StudentFilter{Search: "stu002"})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	assert.Equal(t, "STU002", bySearch[0].StudentID)
}
