// Package inmem provides in-memory implementations of the repository
// interfaces. They back the service tests and enforce the same invariants
// as the PostgreSQL implementations: unique keys, batch capacity counters,
// one attendance record per (student, batch, date).
package inmem

import (
	"sync"
	"time"

	"github.com/psanashik/academy/internal/app/models"
	"github.com/psanashik/academy/internal/app/repositories"
)

// Store holds all in-memory state behind a single mutex. Every repository
// created by NewRepositories shares the same Store, so cross-entity
// invariants (capacity counters) hold just like in a single database.
type Store struct {
	mu sync.Mutex

	seq int64

	users          map[int64]*models.User
	students       map[int64]*models.Student
	coaches        map[int64]*models.Coach
	sports         map[int64]*models.Sport
	batches        map[int64]*models.Batch
	payments       map[int64]*models.Payment
	attendance     map[int64]*models.Attendance
	communications map[int64]*models.Communication
	campaigns      map[int64]*models.Campaign
	badges         map[int64]*models.StudentBadge
	earnings       map[int64]*models.BadgeEarning
	pings          map[int64]*models.GPSPing
	settings       map[string]*models.SystemSetting
	tokens         map[string]*refreshToken
}

type refreshToken struct {
	userID     int64
	expiryDate time.Time
	isRevoked  bool
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		users:          make(map[int64]*models.User),
		students:       make(map[int64]*models.Student),
		coaches:        make(map[int64]*models.Coach),
		sports:         make(map[int64]*models.Sport),
		batches:        make(map[int64]*models.Batch),
		payments:       make(map[int64]*models.Payment),
		attendance:     make(map[int64]*models.Attendance),
		communications: make(map[int64]*models.Communication),
		campaigns:      make(map[int64]*models.Campaign),
		badges:         make(map[int64]*models.StudentBadge),
		earnings:       make(map[int64]*models.BadgeEarning),
		pings:          make(map[int64]*models.GPSPing),
		settings:       make(map[string]*models.SystemSetting),
		tokens:         make(map[string]*refreshToken),
	}
}

// NewRepositories creates a repository set backed by a fresh shared Store.
func NewRepositories() *repositories.Repositories {
	return NewRepositoriesWithStore(NewStore())
}

// NewRepositoriesWithStore creates a repository set over an existing store,
// for tests that need direct access to the underlying state.
func NewRepositoriesWithStore(s *Store) *repositories.Repositories {
	return &repositories.Repositories{
		UserRepository:          &userRepository{s},
		StudentRepository:       &studentRepository{s},
		CoachRepository:         &coachRepository{s},
		SportRepository:         &sportRepository{s},
		BatchRepository:         &batchRepository{s},
		PaymentRepository:       &paymentRepository{s},
		AttendanceRepository:    &attendanceRepository{s},
		CommunicationRepository: &communicationRepository{s},
		CampaignRepository:      &campaignRepository{s},
		BadgeRepository:         &badgeRepository{s},
		GPSRepository:           &gpsRepository{s},
		SettingRepository:       &settingRepository{s},
		TokenRepository:         &tokenRepository{s},
	}
}

// nextID must be called with the mutex held.
func (s *Store) nextID() int64 {
	s.seq++
	return s.seq
}

// SetBatchCapacity overwrites a batch's capacity counter directly, bypassing
// enrollment bookkeeping. Lets tests simulate counter drift before a
// recompute.
func (s *Store) SetBatchCapacity(id int64, capacity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if batch, ok := s.batches[id]; ok {
		batch.CurrentCapacity = capacity
	}
}
