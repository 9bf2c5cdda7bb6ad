package dto

import (
	"time"

	"hospital-admin/internal/domain/entity"
)

// Request DTOs

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RegisterDoctorRequest struct {
	Username       string  `json:"username" validate:"required,min=3,max=50"`
	Password       string  `json:"password" validate:"required,min=6"`
	Email          *string `json:"email" validate:"omitempty,email,max=100"`
	PhoneNumber    *string `json:"phone_number" validate:"omitempty,max=20"`
	Name           string  `json:"name" validate:"required,max=100"`
	Department     string  `json:"department" validate:"required,max=100"`
	Title          *string `json:"title" validate:"omitempty,max=50"`
	WorkingHours   string  `json:"working_hours" validate:"required,max=100"`
	ProfilePicture *string `json:"profile_picture" validate:"omitempty,url,max=255"`
}

type RegisterPatientRequest struct {
	Username    string  `json:"username" validate:"required,min=3,max=50"`
	Password    string  `json:"password" validate:"required,min=6"`
	Email       *string `json:"email" validate:"omitempty,email,max=100"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=20"`
	Name        string  `json:"name" validate:"required,max=100"`
	Gender      string  `json:"gender" validate:"required,oneof=Male Female"`
	BirthDate   string  `json:"birth_date" validate:"required,datetime=2006-01-02"`
	IDNumber    string  `json:"id_number" validate:"required,max=18"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserResponse struct {
	UserID      int64           `json:"user_id"`
	Username    string          `json:"username"`
	UserType    entity.UserType `json:"user_type"`
	Email       *string         `json:"email,omitempty"`
	PhoneNumber *string         `json:"phone_number,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

type RegistrationResponse struct {
	User    UserResponse     `json:"user"`
	Doctor  *DoctorResponse  `json:"doctor,omitempty"`
	Patient *PatientResponse `json:"patient,omitempty"`
}
