package usecase

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=test password=test dbname=test port=5432 sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open dry-run db: %v", err)
	}
	return db
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// listFunc adapts a function to every List-only repository interface.
type listFunc[T any] func(db *gorm.DB, q entity.ListQuery) ([]T, error)

func (f listFunc[T]) List(db *gorm.DB, q entity.ListQuery) ([]T, error) {
	return f(db, q)
}

type mockDoctorRepo struct {
	listFunc[entity.Doctor]
	created []*entity.Doctor
}

func (m *mockDoctorRepo) Create(db *gorm.DB, doctor *entity.Doctor) error {
	m.created = append(m.created, doctor)
	return nil
}

type mockPatientRepo struct {
	listFunc[entity.Patient]
}

func (m *mockPatientRepo) Create(db *gorm.DB, patient *entity.Patient) error {
	return nil
}

type mockUserRepo struct {
	users map[string]*entity.User
	err   error
}

func (m *mockUserRepo) Create(db *gorm.DB, user *entity.User) error {
	return m.err
}

func (m *mockUserRepo) FindByUsername(db *gorm.DB, username string) (*entity.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.users[username], nil
}

func (m *mockUserRepo) FindByID(db *gorm.DB, id int64) (*entity.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.users {
		if u.UserID == id {
			return u, nil
		}
	}
	return nil, nil
}

type mockStatsRepo struct {
	mu       sync.Mutex
	counts   map[string]int64
	failOn   string
	statuses []entity.AppointmentStatus
	calls    int
}

func (m *mockStatsRepo) Count(db *gorm.DB, table string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if table == m.failOn {
		return 0, errBackend
	}
	return m.counts[table], nil
}

func (m *mockStatsRepo) AppointmentStatuses(db *gorm.DB) ([]entity.AppointmentStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return m.statuses, nil
}

type mockDashboardCache struct {
	cached *dto.DashboardResponse
	stored *dto.DashboardResponse
}

func (m *mockDashboardCache) Get(ctx context.Context) (*dto.DashboardResponse, bool, error) {
	if m.cached == nil {
		return nil, false, nil
	}
	copied := *m.cached
	return &copied, true, nil
}

func (m *mockDashboardCache) Set(ctx context.Context, summary *dto.DashboardResponse) error {
	m.stored = summary
	return nil
}

func (m *mockDashboardCache) Invalidate(ctx context.Context) error {
	m.cached = nil
	return nil
}

type mockSessionStore struct {
	access  map[string]bool
	refresh map[string]bool
	revoked []string
}

func newMockSessionStore() *mockSessionStore {
	return &mockSessionStore{access: map[string]bool{}, refresh: map[string]bool{}}
}

func (m *mockSessionStore) Store(ctx context.Context, userID int64, accessTokenID string, accessTTL time.Duration, refreshTokenID string, refreshTTL time.Duration) error {
	m.access[accessTokenID] = true
	m.refresh[refreshTokenID] = true
	return nil
}

func (m *mockSessionStore) IsAccessValid(ctx context.Context, userID int64, tokenID string) (bool, error) {
	return m.access[tokenID], nil
}

func (m *mockSessionStore) ConsumeRefresh(ctx context.Context, userID int64, tokenID string) (bool, error) {
	ok := m.refresh[tokenID]
	delete(m.refresh, tokenID)
	return ok, nil
}

func (m *mockSessionStore) Revoke(ctx context.Context, userID int64, accessTokenID, refreshTokenID string) error {
	delete(m.access, accessTokenID)
	delete(m.refresh, refreshTokenID)
	m.revoked = append(m.revoked, accessTokenID)
	return nil
}

func (m *mockSessionStore) RevokeAll(ctx context.Context, userID int64) error {
	m.access = map[string]bool{}
	m.refresh = map[string]bool{}
	return nil
}

type mockAuditService struct {
	actions []string
}

func (m *mockAuditService) Record(ctx context.Context, tx *gorm.DB, event entity.AuditEvent) error {
	m.actions = append(m.actions, event.Action)
	return nil
}
