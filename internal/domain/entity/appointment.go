package entity

import "time"

// AppointmentStatus represents the status of an appointment.
// Any status may be set at any time; no transition rules apply.
type AppointmentStatus string

const (
	AppointmentStatusBooked    AppointmentStatus = "Booked"
	AppointmentStatusAttended  AppointmentStatus = "Attended"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
)

// AppointmentStatuses lists every known status in display order
var AppointmentStatuses = []AppointmentStatus{
	AppointmentStatusBooked,
	AppointmentStatusAttended,
	AppointmentStatusCancelled,
}

// Appointment represents a patient visit booked with a doctor
type Appointment struct {
	AppointmentID   int64             `gorm:"column:appointment_id;primaryKey;autoIncrement" json:"appointment_id"`
	PatientID       int64             `gorm:"not null;index" json:"patient_id"`
	DoctorID        int64             `gorm:"not null;index" json:"doctor_id"`
	AppointmentTime time.Time         `gorm:"not null;index" json:"appointment_time"`
	Department      string            `gorm:"type:varchar(100);not null" json:"department"`
	Status          AppointmentStatus `gorm:"type:appointment_status;not null;default:'Booked';index" json:"status"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:PatientID;references:PatientID" json:"patient,omitempty"`
	Doctor  *Doctor  `gorm:"foreignKey:DoctorID;references:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsBooked checks if appointment is still booked
func (a *Appointment) IsBooked() bool {
	return a.Status == AppointmentStatusBooked
}

// IsAttended checks if the patient attended
func (a *Appointment) IsAttended() bool {
	return a.Status == AppointmentStatusAttended
}

// IsCancelled checks if appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}
