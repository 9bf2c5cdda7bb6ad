package entity

import "time"

// Hospitalization is an inpatient stay. AttendingDoctor is free text, not a foreign key.
type Hospitalization struct {
	HospitalizationID int64     `gorm:"column:hospitalization_id;primaryKey;autoIncrement" json:"hospitalization_id"`
	PatientID         int64     `gorm:"not null;index" json:"patient_id"`
	WardNumber        string    `gorm:"type:varchar(20);not null;index" json:"ward_number"`
	BedNumber         string    `gorm:"type:varchar(20);not null" json:"bed_number"`
	AdmissionDate     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"admission_date"`
	AttendingDoctor   string    `gorm:"type:varchar(100);not null" json:"attending_doctor"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:PatientID;references:PatientID" json:"patient,omitempty"`
}

func (Hospitalization) TableName() string {
	return "hospitalization"
}
