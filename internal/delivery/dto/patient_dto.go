package dto

// Response DTOs

type PatientResponse struct {
	PatientID   int64   `json:"patient_id"`
	UserID      int64   `json:"user_id"`
	Name        string  `json:"name"`
	Gender      string  `json:"gender"`
	BirthDate   string  `json:"birth_date"`
	Age         *int    `json:"age"`
	IDNumber    string  `json:"id_number"`
	PhoneNumber *string `json:"phone_number"`
	Email       *string `json:"email"`
}
