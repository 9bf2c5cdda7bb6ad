package dto

import "time"

// Response DTOs

// Embedded names are nil when the related row was not returned.

type CaseResponse struct {
	CaseID          int64     `json:"case_id"`
	PatientID       int64     `json:"patient_id"`
	DoctorID        int64     `json:"doctor_id"`
	Department      string    `json:"department"`
	Diagnosis       string    `json:"diagnosis"`
	DiagnosisDate   time.Time `json:"diagnosis_date"`
	PatientName     *string   `json:"patient_name"`
	PatientIDNumber *string   `json:"patient_id_number"`
	DoctorName      *string   `json:"doctor_name"`
}

type AppointmentResponse struct {
	AppointmentID   int64     `json:"appointment_id"`
	PatientID       int64     `json:"patient_id"`
	DoctorID        int64     `json:"doctor_id"`
	AppointmentTime time.Time `json:"appointment_time"`
	Department      string    `json:"department"`
	Status          string    `json:"status"`
	PatientName     *string   `json:"patient_name"`
	DoctorName      *string   `json:"doctor_name"`
}

type HospitalizationResponse struct {
	HospitalizationID  int64     `json:"hospitalization_id"`
	PatientID          int64     `json:"patient_id"`
	WardNumber         string    `json:"ward_number"`
	BedNumber          string    `json:"bed_number"`
	AdmissionDate      time.Time `json:"admission_date"`
	DaysHospitalized   *int      `json:"days_hospitalized"`
	AttendingDoctor    string    `json:"attending_doctor"`
	PatientName        *string   `json:"patient_name"`
	PatientIDNumber    *string   `json:"patient_id_number"`
	PatientPhoneNumber *string   `json:"patient_phone_number"`
}

type MedicationResponse struct {
	MedicationID      int64  `json:"medication_id"`
	MedicationName    string `json:"medication_name"`
	Quantity          int    `json:"quantity"`
	UsageInstructions string `json:"usage_instructions"`
}

type PrescriptionResponse struct {
	PrescriptionID      int64                `json:"prescription_id"`
	CaseID              int64                `json:"case_id"`
	DoctorID            int64                `json:"doctor_id"`
	PrescriptionContent string               `json:"prescription_content"`
	IssuedDate          time.Time            `json:"issued_date"`
	DoctorName          *string              `json:"doctor_name"`
	PatientName         *string              `json:"patient_name"`
	Medications         []MedicationResponse `json:"medications"`
}
