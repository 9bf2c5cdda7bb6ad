package converter

import (
	"time"

	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/derived"
	"hospital-admin/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

const dateLayout = "2006-01-02"

// PatientToResponse converts a Patient entity to PatientResponse DTO with the age on today.
// A patient without a birth date gets a nil age and a warning instead of failing the page.
func PatientToResponse(patient *entity.Patient, today time.Time, log logrus.FieldLogger) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	response := &dto.PatientResponse{
		PatientID:   patient.PatientID,
		UserID:      patient.UserID,
		Name:        patient.Name,
		Gender:      string(patient.Gender),
		IDNumber:    patient.IDNumber,
		PhoneNumber: patient.PhoneNumber,
	}
	if !patient.BirthDate.IsZero() {
		response.BirthDate = patient.BirthDate.Format(dateLayout)
	}

	age, err := derived.Age(patient.BirthDate, today)
	if err != nil {
		log.WithField("patient_id", patient.PatientID).Warnf("Failed to compute age: %+v", err)
	} else {
		response.Age = &age
	}

	if patient.User != nil {
		response.Email = patient.User.Email
		if response.PhoneNumber == nil {
			response.PhoneNumber = patient.User.PhoneNumber
		}
	}
	return response
}

func PatientsToResponses(patients []entity.Patient, today time.Time, log logrus.FieldLogger) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i], today, log)
	}
	return responses
}
