package converter

import (
	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO.
// Contact fields come from the embedded user and stay nil when it was not loaded.
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	response := &dto.DoctorResponse{
		DoctorID:       doctor.DoctorID,
		UserID:         doctor.UserID,
		Name:           doctor.Name,
		Department:     doctor.Department,
		Title:          doctor.Title,
		WorkingHours:   doctor.WorkingHours,
		ProfilePicture: doctor.ProfilePicture,
	}
	if doctor.User != nil {
		response.Email = doctor.User.Email
		response.PhoneNumber = doctor.User.PhoneNumber
	}
	return response
}

func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}
