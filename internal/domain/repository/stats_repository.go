package repository

import (
	"hospital-admin/internal/domain/entity"

	"gorm.io/gorm"
)

// StatsRepository issues the count-only queries behind the dashboard.
type StatsRepository interface {
	Count(db *gorm.DB, table string) (int64, error)
	AppointmentStatuses(db *gorm.DB) ([]entity.AppointmentStatus, error)
}
