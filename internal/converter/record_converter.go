package converter

import (
	"time"

	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/derived"
	"hospital-admin/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

func patientName(p *entity.Patient) *string {
	if p == nil {
		return nil
	}
	return &p.Name
}

func patientIDNumber(p *entity.Patient) *string {
	if p == nil {
		return nil
	}
	return &p.IDNumber
}

func doctorName(d *entity.Doctor) *string {
	if d == nil {
		return nil
	}
	return &d.Name
}

func CasesToResponses(cases []entity.Case) []dto.CaseResponse {
	responses := make([]dto.CaseResponse, len(cases))
	for i, c := range cases {
		responses[i] = dto.CaseResponse{
			CaseID:          c.CaseID,
			PatientID:       c.PatientID,
			DoctorID:        c.DoctorID,
			Department:      c.Department,
			Diagnosis:       c.Diagnosis,
			DiagnosisDate:   c.DiagnosisDate,
			PatientName:     patientName(c.Patient),
			PatientIDNumber: patientIDNumber(c.Patient),
			DoctorName:      doctorName(c.Doctor),
		}
	}
	return responses
}

func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, a := range appointments {
		responses[i] = dto.AppointmentResponse{
			AppointmentID:   a.AppointmentID,
			PatientID:       a.PatientID,
			DoctorID:        a.DoctorID,
			AppointmentTime: a.AppointmentTime,
			Department:      a.Department,
			Status:          string(a.Status),
			PatientName:     patientName(a.Patient),
			DoctorName:      doctorName(a.Doctor),
		}
	}
	return responses
}

// HospitalizationsToResponses attaches the days spent in hospital as of today.
func HospitalizationsToResponses(rows []entity.Hospitalization, today time.Time, log logrus.FieldLogger) []dto.HospitalizationResponse {
	responses := make([]dto.HospitalizationResponse, len(rows))
	for i, h := range rows {
		response := dto.HospitalizationResponse{
			HospitalizationID: h.HospitalizationID,
			PatientID:         h.PatientID,
			WardNumber:        h.WardNumber,
			BedNumber:         h.BedNumber,
			AdmissionDate:     h.AdmissionDate,
			AttendingDoctor:   h.AttendingDoctor,
			PatientName:       patientName(h.Patient),
			PatientIDNumber:   patientIDNumber(h.Patient),
		}
		if h.Patient != nil {
			response.PatientPhoneNumber = h.Patient.PhoneNumber
		}

		days, err := derived.DaysHospitalized(h.AdmissionDate, today)
		if err != nil {
			log.WithField("hospitalization_id", h.HospitalizationID).Warnf("Failed to compute days hospitalized: %+v", err)
		} else {
			response.DaysHospitalized = &days
		}
		responses[i] = response
	}
	return responses
}

func PrescriptionsToResponses(prescriptions []entity.Prescription) []dto.PrescriptionResponse {
	responses := make([]dto.PrescriptionResponse, len(prescriptions))
	for i, p := range prescriptions {
		response := dto.PrescriptionResponse{
			PrescriptionID:      p.PrescriptionID,
			CaseID:              p.CaseID,
			DoctorID:            p.DoctorID,
			PrescriptionContent: p.PrescriptionContent,
			IssuedDate:          p.IssuedDate,
			DoctorName:          doctorName(p.Doctor),
			Medications:         make([]dto.MedicationResponse, len(p.Medications)),
		}
		if p.Case != nil {
			response.PatientName = patientName(p.Case.Patient)
		}
		for j, m := range p.Medications {
			response.Medications[j] = dto.MedicationResponse{
				MedicationID:      m.MedicationID,
				MedicationName:    m.MedicationName,
				Quantity:          m.Quantity,
				UsageInstructions: m.UsageInstructions,
			}
		}
		responses[i] = response
	}
	return responses
}
