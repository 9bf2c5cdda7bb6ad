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

type CaseUsecase interface {
	ListCases(ctx context.Context, req *dto.ListRequest) (*dto.PageResponse[dto.CaseResponse], error)
}

type caseUsecase struct {
	db      *gorm.DB
	log     *logrus.Logger
	timeout time.Duration
	page    listPage[entity.Case]
}

func NewCaseUsecase(db *gorm.DB, log *logrus.Logger, caseRepo repository.CaseRepository, timeout time.Duration) CaseUsecase {
	return &caseUsecase{
		db:      db,
		log:     log,
		timeout: timeout,
		page: listPage[entity.Case]{
			table: schema.Cases,
			query: entity.ListQuery{Embeds: []string{"patients", "doctors"}, OrderColumn: "diagnosis_date", Direction: entity.Descending},
			spec:  filter.Cases,
			list:  caseRepo.List,
		},
	}
}

func (u *caseUsecase) ListCases(ctx context.Context, req *dto.ListRequest) (*dto.PageResponse[dto.CaseResponse], error) {
	loaded, err := u.page.load(ctx, u.db, u.log, u.timeout, req)
	if loaded == nil {
		return nil, err
	}
	return toPageResponse(loaded, converter.CasesToResponses), err
}
