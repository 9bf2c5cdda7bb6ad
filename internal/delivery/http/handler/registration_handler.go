package handler

import (
	"errors"
	"net/http"

	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/delivery/http/middleware"
	"hospital-admin/internal/usecase"
	"hospital-admin/pkg/response"
	"hospital-admin/pkg/validator"
)

// RegistrationHandler creates doctor and patient accounts. Only doctors reach it.
type RegistrationHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewRegistrationHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *RegistrationHandler {
	return &RegistrationHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

// RegisterDoctor
// @Summary Register a doctor account and profile
// @Tags Registrations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.RegisterDoctorRequest true "Doctor"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /registrations/doctors [post]
func (h *RegistrationHandler) RegisterDoctor(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.RegisterDoctorRequest
	if !bind(w, r, h.validator, &req) {
		return
	}

	result, err := h.authUsecase.RegisterDoctor(r.Context(), actorID, &req)
	if err != nil {
		writeRegistrationError(w, err, "doctor")
		return
	}

	response.Success(w, http.StatusCreated, "Doctor registered successfully", result)
}

// RegisterPatient
// @Summary Register a patient account and profile
// @Tags Registrations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.RegisterPatientRequest true "Patient"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /registrations/patients [post]
func (h *RegistrationHandler) RegisterPatient(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.RegisterPatientRequest
	if !bind(w, r, h.validator, &req) {
		return
	}

	result, err := h.authUsecase.RegisterPatient(r.Context(), actorID, &req)
	if err != nil {
		writeRegistrationError(w, err, "patient")
		return
	}

	response.Success(w, http.StatusCreated, "Patient registered successfully", result)
}

func writeRegistrationError(w http.ResponseWriter, err error, kind string) {
	switch {
	case errors.Is(err, usecase.ErrUsernameAlreadyExists):
		response.Error(w, http.StatusConflict, "Username already exists", nil)
	case errors.Is(err, usecase.ErrIDNumberAlreadyExists):
		response.Error(w, http.StatusConflict, "ID number already exists", nil)
	case errors.Is(err, usecase.ErrInvalidDateFormat):
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, usecase.ErrMissingRequiredField):
		response.Error(w, http.StatusBadRequest, "Missing required field", err.Error())
	default:
		response.InternalServerError(w, "Failed to register "+kind)
	}
}
