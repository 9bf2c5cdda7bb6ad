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

type AppointmentUsecase interface {
	ListAppointments(ctx context.Context, req *dto.ListRequest) (*dto.PageResponse[dto.AppointmentResponse], error)
}

type appointmentUsecase struct {
	db      *gorm.DB
	log     *logrus.Logger
	timeout time.Duration
	page    listPage[entity.Appointment]
}

func NewAppointmentUsecase(db *gorm.DB, log *logrus.Logger, appointmentRepo repository.AppointmentRepository, timeout time.Duration) AppointmentUsecase {
	return &appointmentUsecase{
		db:      db,
		log:     log,
		timeout: timeout,
		page: listPage[entity.Appointment]{
			table: schema.Appointments,
			query: entity.ListQuery{Embeds: []string{"patients", "doctors"}, OrderColumn: "appointment_time", Direction: entity.Descending},
			spec:  filter.Appointments,
			list:  appointmentRepo.List,
		},
	}
}

func (u *appointmentUsecase) ListAppointments(ctx context.Context, req *dto.ListRequest) (*dto.PageResponse[dto.AppointmentResponse], error) {
	loaded, err := u.page.load(ctx, u.db, u.log, u.timeout, req)
	if loaded == nil {
		return nil, err
	}
	return toPageResponse(loaded, converter.AppointmentsToResponses), err
}
