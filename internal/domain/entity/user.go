package entity

import "time"

// UserType distinguishes the two kinds of accounts
type UserType string

const (
	UserTypeDoctor  UserType = "Doctor"
	UserTypePatient UserType = "Patient"
)

// User represents the centralized authentication table
type User struct {
	UserID      int64     `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	Username    string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Password    string    `gorm:"type:varchar(255);not null" json:"-"`
	UserType    UserType  `gorm:"type:user_type;not null" json:"user_type"`
	Email       *string   `gorm:"type:varchar(100)" json:"email,omitempty"`
	PhoneNumber *string   `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// IsDoctor checks if the account belongs to a doctor
func (u *User) IsDoctor() bool {
	return u.UserType == UserTypeDoctor
}
