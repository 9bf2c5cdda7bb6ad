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

type PrescriptionUsecase interface {
	ListPrescriptions(ctx context.Context, req *dto.ListRequest) (*dto.PageResponse[dto.PrescriptionResponse], error)
}

type prescriptionUsecase struct {
	db      *gorm.DB
	log     *logrus.Logger
	timeout time.Duration
	page    listPage[entity.Prescription]
}

func NewPrescriptionUsecase(db *gorm.DB, log *logrus.Logger, prescriptionRepo repository.PrescriptionRepository, timeout time.Duration) PrescriptionUsecase {
	return &prescriptionUsecase{
		db:      db,
		log:     log,
		timeout: timeout,
		page: listPage[entity.Prescription]{
			table: schema.Prescriptions,
			query: entity.ListQuery{
				Embeds:      []string{"doctors", "cases", "cases.patients", "medications"},
				OrderColumn: "issued_date",
				Direction:   entity.Descending,
			},
			spec: filter.Prescriptions,
			list: prescriptionRepo.List,
		},
	}
}

func (u *prescriptionUsecase) ListPrescriptions(ctx context.Context, req *dto.ListRequest) (*dto.PageResponse[dto.PrescriptionResponse], error) {
	loaded, err := u.page.load(ctx, u.db, u.log, u.timeout, req)
	if loaded == nil {
		return nil, err
	}
	return toPageResponse(loaded, converter.PrescriptionsToResponses), err
}
