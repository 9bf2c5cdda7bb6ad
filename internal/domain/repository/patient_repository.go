package repository

import (
	"hospital-admin/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	List(db *gorm.DB, q entity.ListQuery) ([]entity.Patient, error)
	Create(db *gorm.DB, patient *entity.Patient) error
}
