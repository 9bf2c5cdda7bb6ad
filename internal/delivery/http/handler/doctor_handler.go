package handler

import (
	"net/http"

	"hospital-admin/internal/filter"
	"hospital-admin/internal/usecase"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
	}
}

// ListDoctors handles the doctor directory page
// @Summary List doctors
// @Tags Doctors
// @Security BearerAuth
// @Produce json
// @Param search query string false "Matches name, department or title"
// @Param department query string false "Department filter"
// @Param order query string false "Order column (default name)"
// @Param direction query string false "asc or desc"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /doctors [get]
func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	req := parseListRequest(r, filter.CategoryDepartment)
	page, err := h.doctorUsecase.ListDoctors(r.Context(), req)
	writeList(w, page, err, "Doctors")
}
