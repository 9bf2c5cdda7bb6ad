package entity

import "time"

// Prescription is issued by a doctor against a case
type Prescription struct {
	PrescriptionID      int64     `gorm:"column:prescription_id;primaryKey;autoIncrement" json:"prescription_id"`
	CaseID              int64     `gorm:"not null;index" json:"case_id"`
	DoctorID            int64     `gorm:"not null;index" json:"doctor_id"`
	PrescriptionContent string    `gorm:"type:text;not null" json:"prescription_content"`
	IssuedDate          time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"issued_date"`

	// Relationships
	Case        *Case        `gorm:"foreignKey:CaseID;references:CaseID" json:"case,omitempty"`
	Doctor      *Doctor      `gorm:"foreignKey:DoctorID;references:DoctorID" json:"doctor,omitempty"`
	Medications []Medication `gorm:"foreignKey:PrescriptionID;references:PrescriptionID" json:"medications,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}
