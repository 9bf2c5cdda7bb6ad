package repository

import (
	"hospital-admin/internal/domain/entity"
	domainRepo "hospital-admin/internal/domain/repository"
	"hospital-admin/internal/domain/schema"

	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) List(db *gorm.DB, q entity.ListQuery) ([]entity.Patient, error) {
	return fetchList[entity.Patient](db, schema.Patients, q)
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Create(patient).Error
}
