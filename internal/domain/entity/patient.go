package entity

import "time"

// Gender of a patient
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// Patient represents patient-specific profile data
type Patient struct {
	PatientID   int64     `gorm:"column:patient_id;primaryKey;autoIncrement" json:"patient_id"`
	UserID      int64     `gorm:"not null;index" json:"user_id"`
	Name        string    `gorm:"type:varchar(100);not null;index" json:"name"`
	Gender      Gender    `gorm:"type:gender;not null" json:"gender"`
	BirthDate   time.Time `gorm:"type:date;not null" json:"birth_date"`
	IDNumber    string    `gorm:"column:id_number;type:varchar(18);uniqueIndex;not null" json:"id_number"`
	PhoneNumber *string   `gorm:"type:varchar(20)" json:"phone_number,omitempty"`

	// Relationships
	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
