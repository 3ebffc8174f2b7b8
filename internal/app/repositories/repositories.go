// Package repositories contains the storage layer. Each entity gets a small
// interface so services can be backed by PostgreSQL in production and by the
// in-memory implementations under repositories/inmem in tests.
package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/psanashik/academy/internal/app/models"
)

// UserFilter narrows user listings.
type UserFilter struct {
	Search          string
	Role            models.RoleType
	IncludeInactive bool
}

// StudentFilter narrows student listings.
type StudentFilter struct {
	Search          string
	SportID         int64
	BatchID         int64
	IncludeInactive bool
}

// PaymentFilter narrows payment listings. Status filtering happens in the
// service layer after status derivation, never in SQL.
type PaymentFilter struct {
	Search    string
	MonthYear string
	StudentID int64
}

// AttendanceFilter narrows attendance listings.
type AttendanceFilter struct {
	Date      *time.Time
	From      *time.Time
	To        *time.Time
	BatchID   int64
	StudentID int64
}

// GPSFilter narrows GPS ping listings.
type GPSFilter struct {
	UserID int64
	From   *time.Time
	To     *time.Time
}

// UserRepository handles user storage.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, filter UserFilter) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	RecordLogin(ctx context.Context, id int64, at time.Time) error
	Deactivate(ctx context.Context, id int64) error
}

// StudentRepository handles student storage. Create, Transfer and Deactivate
// adjust the owning batch's capacity counter in the same transaction that
// mutates the student row.
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByStudentID(ctx context.Context, studentID string) (*models.Student, error)
	List(ctx context.Context, filter StudentFilter) ([]*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Transfer(ctx context.Context, id, toBatchID int64) error
	Deactivate(ctx context.Context, id int64) error
	CountActiveByBatch(ctx context.Context, batchID int64) (int, error)
}

// CoachRepository handles coach storage.
type CoachRepository interface {
	Create(ctx context.Context, coach *models.Coach) error
	GetByID(ctx context.Context, id int64) (*models.Coach, error)
	List(ctx context.Context, includeInactive bool) ([]*models.Coach, error)
	Update(ctx context.Context, coach *models.Coach) error
	Deactivate(ctx context.Context, id int64) error
}

// SportRepository handles sport storage.
type SportRepository interface {
	Create(ctx context.Context, sport *models.Sport) error
	GetByID(ctx context.Context, id int64) (*models.Sport, error)
	List(ctx context.Context, includeInactive bool) ([]*models.Sport, error)
	Update(ctx context.Context, sport *models.Sport) error
	Deactivate(ctx context.Context, id int64) error
}

// BatchRepository handles batch storage.
type BatchRepository interface {
	Create(ctx context.Context, batch *models.Batch) error
	GetByID(ctx context.Context, id int64) (*models.Batch, error)
	List(ctx context.Context, includeInactive bool) ([]*models.Batch, error)
	Update(ctx context.Context, batch *models.Batch) error
	Deactivate(ctx context.Context, id int64) error
	// RecomputeCapacities resets every batch's counter to the count of its
	// active students. Consistency check for the capacity invariant.
	RecomputeCapacities(ctx context.Context) error
}

// PaymentRepository handles payment storage.
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	GetByID(ctx context.Context, id int64) (*models.Payment, error)
	List(ctx context.Context, filter PaymentFilter) ([]*models.Payment, error)
	Update(ctx context.Context, payment *models.Payment) error
}

// AttendanceRepository handles attendance storage.
type AttendanceRepository interface {
	Create(ctx context.Context, record *models.Attendance) error
	GetByID(ctx context.Context, id int64) (*models.Attendance, error)
	List(ctx context.Context, filter AttendanceFilter) ([]*models.Attendance, error)
	Update(ctx context.Context, record *models.Attendance) error
}

// CommunicationRepository handles communication storage.
type CommunicationRepository interface {
	Create(ctx context.Context, comm *models.Communication) error
	GetByID(ctx context.Context, id int64) (*models.Communication, error)
	List(ctx context.Context) ([]*models.Communication, error)
	UpdateStatus(ctx context.Context, id int64, status models.CommunicationStatus, sentAt *time.Time) error
}

// CampaignRepository handles campaign storage.
type CampaignRepository interface {
	Create(ctx context.Context, campaign *models.Campaign) error
	GetByID(ctx context.Context, id int64) (*models.Campaign, error)
	List(ctx context.Context) ([]*models.Campaign, error)
	Update(ctx context.Context, campaign *models.Campaign) error
}

// BadgeRepository handles badge definitions and earnings.
type BadgeRepository interface {
	Create(ctx context.Context, badge *models.StudentBadge) error
	GetByID(ctx context.Context, id int64) (*models.StudentBadge, error)
	List(ctx context.Context, includeInactive bool) ([]*models.StudentBadge, error)
	Update(ctx context.Context, badge *models.StudentBadge) error
	Award(ctx context.Context, earning *models.BadgeEarning) error
	ListEarnings(ctx context.Context, studentID int64) ([]*models.BadgeEarning, error)
}

// GPSRepository handles GPS ping storage.
type GPSRepository interface {
	Create(ctx context.Context, ping *models.GPSPing) error
	List(ctx context.Context, filter GPSFilter) ([]*models.GPSPing, error)
}

// SettingRepository handles system settings, keyed uniquely.
type SettingRepository interface {
	Create(ctx context.Context, setting *models.SystemSetting) error
	GetByKey(ctx context.Context, key string) (*models.SystemSetting, error)
	List(ctx context.Context, category string) ([]*models.SystemSetting, error)
	Update(ctx context.Context, setting *models.SystemSetting) error
	Delete(ctx context.Context, key string) error
}

// TokenRepository persists refresh tokens so sessions survive restarts and
// can be revoked.
type TokenRepository interface {
	CreateToken(ctx context.Context, token string, userID int64, expiryDate time.Time) error
	GetTokenByValue(ctx context.Context, token string) (userID int64, expiryDate time.Time, isRevoked bool, err error)
	RevokeToken(ctx context.Context, token string) error
	RevokeAllUserTokens(ctx context.Context, userID int64) error
}

// Repositories bundles the PostgreSQL implementations.
type Repositories struct {
	UserRepository          UserRepository
	StudentRepository       StudentRepository
	CoachRepository         CoachRepository
	SportRepository         SportRepository
	BatchRepository         BatchRepository
	PaymentRepository       PaymentRepository
	AttendanceRepository    AttendanceRepository
	CommunicationRepository CommunicationRepository
	CampaignRepository      CampaignRepository
	BadgeRepository         BadgeRepository
	GPSRepository           GPSRepository
	SettingRepository       SettingRepository
	TokenRepository         TokenRepository
}

// NewRepositories creates the PostgreSQL-backed repository set.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:          NewUserRepository(db),
		StudentRepository:       NewStudentRepository(db),
		CoachRepository:         NewCoachRepository(db),
		SportRepository:         NewSportRepository(db),
		BatchRepository:         NewBatchRepository(db),
		PaymentRepository:       NewPaymentRepository(db),
		AttendanceRepository:    NewAttendanceRepository(db),
		CommunicationRepository: NewCommunicationRepository(db),
		CampaignRepository:      NewCampaignRepository(db),
		BadgeRepository:         NewBadgeRepository(db),
		GPSRepository:           NewGPSRepository(db),
		SettingRepository:       NewSettingRepository(db),
		TokenRepository:         NewTokenRepository(db),
	}
}
