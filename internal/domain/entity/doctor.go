package entity

// Doctor represents doctor-specific profile data
type Doctor struct {
	DoctorID       int64   `gorm:"column:doctor_id;primaryKey;autoIncrement" json:"doctor_id"`
	UserID         int64   `gorm:"not null;index" json:"user_id"`
	Name           string  `gorm:"type:varchar(100);not null;index" json:"name"`
	Department     string  `gorm:"type:varchar(100);not null;index" json:"department"`
	Title          *string `gorm:"type:varchar(50)" json:"title,omitempty"`
	WorkingHours   string  `gorm:"type:varchar(100);not null" json:"working_hours"`
	ProfilePicture *string `gorm:"type:varchar(255)" json:"profile_picture,omitempty"`

	// Relationships
	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
