package usecase

import (
	"context"
	"time"

	"hospital-admin/internal/converter"
	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/domain/entity"
	"hospital-admin/internal/domain/repository"
	"hospital-admin/internal/domain/schema"
	"hospital-admin/internal/filter"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type HospitalizationUsecase interface {
	ListHospitalizations(ctx context.Context, req *dto.ListRequest) (*dto.PageResponse[dto.HospitalizationResponse], error)
}

type hospitalizationUsecase struct {
	db      *gorm.DB
	log     *logrus.Logger
	timeout time.Duration
	now     func() time.Time
	page    listPage[entity.Hospitalization]
}

func NewHospitalizationUsecase(db *gorm.DB, log *logrus.Logger, hospitalizationRepo repository.HospitalizationRepository, timeout time.Duration) HospitalizationUsecase {
	return &hospitalizationUsecase{
		db:      db,
		log:     log,
		timeout: timeout,
		now:     time.Now,
		page: listPage[entity.Hospitalization]{
			table: schema.Hospitalizations,
			query: entity.ListQuery{Embeds: []string{"patients"}, OrderColumn: "admission_date", Direction: entity.Descending},
			spec:  filter.Hospitalizations,
			list:  hospitalizationRepo.List,
		},
	}
}

func (u *hospitalizationUsecase) ListHospitalizations(ctx context.Context, req *dto.ListRequest) (*dto.PageResponse[dto.HospitalizationResponse], error) {
	loaded, err := u.page.load(ctx, u.db, u.log, u.timeout, req)
	if loaded == nil {
		return nil, err
	}
	today := u.now()
	return toPageResponse(loaded, func(rows []entity.Hospitalization) []dto.HospitalizationResponse {
		return converter.HospitalizationsToResponses(rows, today, u.log)
	}), err
}
