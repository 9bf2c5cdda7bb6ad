package usecase

import (
	"context"
	"time"

	"hospital-admin/internal/converter"
	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/derived"
	"hospital-admin/internal/domain/entity"
	"hospital-admin/internal/domain/repository"
	"hospital-admin/internal/domain/schema"
	"hospital-admin/internal/infrastructure/metrics"
	"hospital-admin/internal/service"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const dashboardEntity = "dashboard"

type DashboardUsecase interface {
	GetSummary(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	statsRepo repository.StatsRepository
	cache     service.DashboardCache
	timeout   time.Duration
	tables    []string
	now       func() time.Time
}

func NewDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	statsRepo repository.StatsRepository,
	cache service.DashboardCache,
	timeout time.Duration,
) DashboardUsecase {
	return &dashboardUsecase{
		db:        db,
		log:       log,
		statsRepo: statsRepo,
		cache:     cache,
		timeout:   timeout,
		tables:    schema.Names(),
		now:       time.Now,
	}
}

// GetSummary counts every table and buckets appointment statuses. All queries run
// concurrently and the first failure cancels the rest: the summary is all or nothing.
func (u *dashboardUsecase) GetSummary(ctx context.Context) (*dto.DashboardResponse, error) {
	if cached, ok, err := u.cache.Get(ctx); err != nil {
		u.log.Warnf("Failed to read dashboard cache: %+v", err)
	} else if ok {
		metrics.RecordDashboardCache(true)
		cached.Cached = true
		return cached, nil
	}
	metrics.RecordDashboardCache(false)

	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	counts := make([]int64, len(u.tables))
	var statuses []entity.AppointmentStatus

	g, gctx := errgroup.WithContext(ctx)
	db := u.db.WithContext(gctx)
	for i, table := range u.tables {
		i, table := i, table
		g.Go(func() error {
			total, err := u.statsRepo.Count(db, table)
			if err != nil {
				return &FetchError{Entity: table, Err: err}
			}
			counts[i] = total
			return nil
		})
	}
	g.Go(func() error {
		rows, err := u.statsRepo.AppointmentStatuses(db)
		if err != nil {
			return &FetchError{Entity: schema.Appointments.Name, Err: err}
		}
		statuses = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		metrics.RecordFetchError(dashboardEntity)
		u.log.WithField("entity", dashboardEntity).Warnf("Failed to fetch dashboard summary: %+v", err)
		return nil, err
	}

	totals := make(map[string]int64, len(u.tables))
	for i, table := range u.tables {
		totals[table] = counts[i]
	}
	dist := derived.StatusDistribution(statuses)

	summary := &dto.DashboardResponse{
		Totals:             totals,
		AppointmentTotal:   dist.Total,
		StatusDistribution: converter.DistributionToResponse(dist),
		GeneratedAt:        u.now().UTC(),
	}

	if err := u.cache.Set(ctx, summary); err != nil {
		u.log.Warnf("Failed to write dashboard cache: %+v", err)
	}

	return summary, nil
}
