package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/psanashik/academy/internal/app/aggregate"
	"github.com/psanashik/academy/internal/app/models"
	"github.com/psanashik/academy/internal/app/models/dto"
	"github.com/psanashik/academy/internal/app/repositories"
	"github.com/psanashik/academy/internal/app/repositories/inmem"
	"github.com/psanashik/academy/internal/pkg/auth"
)

// testEnv wires the full service set over in-memory repositories.
type testEnv struct {
	*Services
	ctx   context.Context
	repos *repositories.Repositories
	store *inmem.Store
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := inmem.NewStore()
	repos := inmem.NewRepositoriesWithStore(store)
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret-key-not-for-production",
		AccessTokenExp:  15 * time.Minute,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "academy-test",
	})
	return &testEnv{
		Services: NewServices(repos, jwtService, aggregate.AttendancePolicy{}),
		ctx:      context.Background(),
		repos:    repos,
		store:    store,
	}
}

// seedSport creates a sport with distinct fees per tier.
func (e *testEnv) seedSport(t *testing.T, name string) *models.Sport {
	t.Helper()
	req := &dto.CreateSportRequest{Name: name}
	req.FeeStructure.BaseAmount = 2000
	req.FeeStructure.SkillLevels.Beginner = 2000
	req.FeeStructure.SkillLevels.Intermediate = 2500
	req.FeeStructure.SkillLevels.Advanced = 3000
	sport, err := e.SportService.CreateSport(e.ctx, req)
	require.NoError(t, err)
	return sport
}

func (e *testEnv) seedCoach(t *testing.T, name string) *models.Coach {
	t.Helper()
	coach, err := e.CoachService.CreateCoach(e.ctx, &dto.CreateCoachRequest{
		Name:           name,
		Phone:          "+919800000001",
		Specialization: "Cricket",
		Experience:     5,
	})
	require.NoError(t, err)
	return coach
}

func (e *testEnv) seedBatch(t *testing.T, sportID, coachID int64, maxCapacity int) *models.Batch {
	t.Helper()
	batch, err := e.BatchService.CreateBatch(e.ctx, &dto.CreateBatchRequest{
		Name:    "Morning Batch",
		SportID: sportID,
		CoachID: coachID,
		Schedule: models.BatchSchedule{
			Days: []string{"monday", "wednesday", "friday"},
			Time: "6:00 AM - 7:30 AM",
		},
		MaxCapacity: maxCapacity,
		SkillLevel:  "beginner",
	})
	require.NoError(t, err)
	return batch
}

func (e *testEnv) seedStudent(t *testing.T, studentID string, sportID, batchID int64) *models.Student {
	t.Helper()
	student, err := e.StudentService.CreateStudent(e.ctx, &dto.CreateStudentRequest{
		StudentID:  studentID,
		Name:       "Student " + studentID,
		Phone:      "+9198" + studentID,
		SportID:    sportID,
		BatchID:    batchID,
		SkillLevel: "beginner",
	})
	require.NoError(t, err)
	return student
}

func (e *testEnv) seedAdmin(t *testing.T, email, password string) *models.User {
	t.Helper()
	user, err := e.UserService.CreateUser(e.ctx, &dto.CreateUserRequest{
		Name:     "Admin User",
		Email:    email,
		Phone:    "+919812345678",
		Password: password,
		Role:     "admin",
	}, nil)
	require.NoError(t, err)
	return user
}

func timePtr(t time.Time) *time.Time { return &t }
