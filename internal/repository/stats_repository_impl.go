package repository

import (
	"hospital-admin/internal/domain/entity"
	domainRepo "hospital-admin/internal/domain/repository"
	"hospital-admin/internal/domain/schema"

	"gorm.io/gorm"
)

type statsRepository struct{}

func NewStatsRepository() domainRepo.StatsRepository {
	return &statsRepository{}
}

// Count returns the row count of a table known to the schema.
func (r *statsRepository) Count(db *gorm.DB, table string) (int64, error) {
	if _, err := schema.Lookup(table); err != nil {
		return 0, err
	}
	var total int64
	if err := db.Table(table).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// AppointmentStatuses loads only the status column of every appointment.
func (r *statsRepository) AppointmentStatuses(db *gorm.DB) ([]entity.AppointmentStatus, error) {
	statuses := []entity.AppointmentStatus{}
	err := db.Model(&entity.Appointment{}).Pluck("status", &statuses).Error
	if err != nil {
		return nil, err
	}
	return statuses, nil
}
