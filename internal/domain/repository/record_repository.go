package repository

import (
	"hospital-admin/internal/domain/entity"

	"gorm.io/gorm"
)

type CaseRepository interface {
	List(db *gorm.DB, q entity.ListQuery) ([]entity.Case, error)
}

type AppointmentRepository interface {
	List(db *gorm.DB, q entity.ListQuery) ([]entity.Appointment, error)
}

type HospitalizationRepository interface {
	List(db *gorm.DB, q entity.ListQuery) ([]entity.Hospitalization, error)
}

type PrescriptionRepository interface {
	List(db *gorm.DB, q entity.ListQuery) ([]entity.Prescription, error)
}
