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

type PatientUsecase interface {
	ListPatients(ctx context.Context, req *dto.ListRequest) (*dto.PageResponse[dto.PatientResponse], error)
}

type patientUsecase struct {
	db      *gorm.DB
	log     *logrus.Logger
	timeout time.Duration
	now     func() time.Time
	page    listPage[entity.Patient]
}

func NewPatientUsecase(db *gorm.DB, log *logrus.Logger, patientRepo repository.PatientRepository, timeout time.Duration) PatientUsecase {
	return &patientUsecase{
		db:      db,
		log:     log,
		timeout: timeout,
		now:     time.Now,
		page: listPage[entity.Patient]{
			table: schema.Patients,
			query: entity.ListQuery{Embeds: []string{"users"}, OrderColumn: "name", Direction: entity.Ascending},
			spec:  filter.Patients,
			list:  patientRepo.List,
		},
	}
}

func (u *patientUsecase) ListPatients(ctx context.Context, req *dto.ListRequest) (*dto.PageResponse[dto.PatientResponse], error) {
	loaded, err := u.page.load(ctx, u.db, u.log, u.timeout, req)
	if loaded == nil {
		return nil, err
	}
	today := u.now()
	return toPageResponse(loaded, func(rows []entity.Patient) []dto.PatientResponse {
		return converter.PatientsToResponses(rows, today, u.log)
	}), err
}
