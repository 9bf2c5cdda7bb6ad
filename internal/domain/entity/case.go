package entity

import "time"

// Case is a diagnosis made by a doctor for a patient
type Case struct {
	CaseID        int64     `gorm:"column:case_id;primaryKey;autoIncrement" json:"case_id"`
	PatientID     int64     `gorm:"not null;index" json:"patient_id"`
	Department    string    `gorm:"type:varchar(100);not null;index" json:"department"`
	DoctorID      int64     `gorm:"not null;index" json:"doctor_id"`
	Diagnosis     string    `gorm:"type:text;not null" json:"diagnosis"`
	DiagnosisDate time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"diagnosis_date"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:PatientID;references:PatientID" json:"patient,omitempty"`
	Doctor  *Doctor  `gorm:"foreignKey:DoctorID;references:DoctorID" json:"doctor,omitempty"`
}

func (Case) TableName() string {
	return "cases"
}
