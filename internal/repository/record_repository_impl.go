package repository

import (
	"hospital-admin/internal/domain/entity"
	domainRepo "hospital-admin/internal/domain/repository"
	"hospital-admin/internal/domain/schema"

	"gorm.io/gorm"
)

type caseRepository struct{}

func NewCaseRepository() domainRepo.CaseRepository {
	return &caseRepository{}
}

func (r *caseRepository) List(db *gorm.DB, q entity.ListQuery) ([]entity.Case, error) {
	return fetchList[entity.Case](db, schema.Cases, q)
}

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) List(db *gorm.DB, q entity.ListQuery) ([]entity.Appointment, error) {
	return fetchList[entity.Appointment](db, schema.Appointments, q)
}

type hospitalizationRepository struct{}

func NewHospitalizationRepository() domainRepo.HospitalizationRepository {
	return &hospitalizationRepository{}
}

func (r *hospitalizationRepository) List(db *gorm.DB, q entity.ListQuery) ([]entity.Hospitalization, error) {
	return fetchList[entity.Hospitalization](db, schema.Hospitalizations, q)
}

type prescriptionRepository struct{}

func NewPrescriptionRepository() domainRepo.PrescriptionRepository {
	return &prescriptionRepository{}
}

func (r *prescriptionRepository) List(db *gorm.DB, q entity.ListQuery) ([]entity.Prescription, error) {
	return fetchList[entity.Prescription](db, schema.Prescriptions, q)
}
