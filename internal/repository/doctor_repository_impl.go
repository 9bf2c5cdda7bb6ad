package repository

import (
	"hospital-admin/internal/domain/entity"
	domainRepo "hospital-admin/internal/domain/repository"
	"hospital-admin/internal/domain/schema"

	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) List(db *gorm.DB, q entity.ListQuery) ([]entity.Doctor, error) {
	return fetchList[entity.Doctor](db, schema.Doctors, q)
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Create(doctor).Error
}
