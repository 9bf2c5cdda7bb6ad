package handler

import (
	"net/http"

	"hospital-admin/internal/filter"
	"hospital-admin/internal/usecase"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
	}
}

// ListPatients handles the patient page
// @Summary List patients
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Param search query string false "Matches name, id number or phone number"
// @Param gender query string false "Male or Female"
// @Param order query string false "Order column (default name)"
// @Param direction query string false "asc or desc"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /patients [get]
func (h *PatientHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	req := parseListRequest(r, filter.CategoryGender)
	page, err := h.patientUsecase.ListPatients(r.Context(), req)
	writeList(w, page, err, "Patients")
}
