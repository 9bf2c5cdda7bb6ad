package repository

import (
	"hospital-admin/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	List(db *gorm.DB, q entity.ListQuery) ([]entity.Doctor, error)
	Create(db *gorm.DB, doctor *entity.Doctor) error
}
