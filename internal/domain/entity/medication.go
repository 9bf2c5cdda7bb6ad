package entity

// Medication is one line item of a prescription
type Medication struct {
	MedicationID      int64  `gorm:"column:medication_id;primaryKey;autoIncrement" json:"medication_id"`
	PrescriptionID    int64  `gorm:"not null;index" json:"prescription_id"`
	MedicationName    string `gorm:"type:varchar(100);not null" json:"medication_name"`
	Quantity          int    `gorm:"not null" json:"quantity"`
	UsageInstructions string `gorm:"type:text;not null" json:"usage_instructions"`
}

func (Medication) TableName() string {
	return "medications"
}
