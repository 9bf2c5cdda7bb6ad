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

type DoctorUsecase interface {
	ListDoctors(ctx context.Context, req *dto.ListRequest) (*dto.PageResponse[dto.DoctorResponse], error)
}

type doctorUsecase struct {
	db      *gorm.DB
	log     *logrus.Logger
	timeout time.Duration
	page    listPage[entity.Doctor]
}

func NewDoctorUsecase(db *gorm.DB, log *logrus.Logger, doctorRepo repository.DoctorRepository, timeout time.Duration) DoctorUsecase {
	return &doctorUsecase{
		db:      db,
		log:     log,
		timeout: timeout,
		page: listPage[entity.Doctor]{
			table: schema.Doctors,
			query: entity.ListQuery{Embeds: []string{"users"}, OrderColumn: "name", Direction: entity.Ascending},
			spec:  filter.Doctors,
			list:  doctorRepo.List,
		},
	}
}

func (u *doctorUsecase) ListDoctors(ctx context.Context, req *dto.ListRequest) (*dto.PageResponse[dto.DoctorResponse], error) {
	loaded, err := u.page.load(ctx, u.db, u.log, u.timeout, req)
	if loaded == nil {
		return nil, err
	}
	return toPageResponse(loaded, converter.DoctorsToResponses), err
}
