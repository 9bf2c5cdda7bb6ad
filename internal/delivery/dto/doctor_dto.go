package dto

// Response DTOs

type DoctorResponse struct {
	DoctorID       int64   `json:"doctor_id"`
	UserID         int64   `json:"user_id"`
	Name           string  `json:"name"`
	Department     string  `json:"department"`
	Title          *string `json:"title"`
	WorkingHours   string  `json:"working_hours"`
	ProfilePicture *string `json:"profile_picture,omitempty"`
	Email          *string `json:"email"`
	PhoneNumber    *string `json:"phone_number"`
}
