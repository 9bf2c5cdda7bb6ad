package handler

import (
	"net/http"

	"hospital-admin/internal/filter"
	"hospital-admin/internal/usecase"
)

// RecordHandler serves the clinical record pages: cases, appointments, hospitalizations
// and prescriptions.
type RecordHandler struct {
	caseUsecase            usecase.CaseUsecase
	appointmentUsecase     usecase.AppointmentUsecase
	hospitalizationUsecase usecase.HospitalizationUsecase
	prescriptionUsecase    usecase.PrescriptionUsecase
}

func NewRecordHandler(
	caseUsecase usecase.CaseUsecase,
	appointmentUsecase usecase.AppointmentUsecase,
	hospitalizationUsecase usecase.HospitalizationUsecase,
	prescriptionUsecase usecase.PrescriptionUsecase,
) *RecordHandler {
	return &RecordHandler{
		caseUsecase:            caseUsecase,
		appointmentUsecase:     appointmentUsecase,
		hospitalizationUsecase: hospitalizationUsecase,
		prescriptionUsecase:    prescriptionUsecase,
	}
}

// ListCases
// @Summary List cases with patient and doctor
// @Tags Records
// @Security BearerAuth
// @Produce json
// @Router /cases [get]
func (h *RecordHandler) ListCases(w http.ResponseWriter, r *http.Request) {
	req := parseListRequest(r, filter.CategoryDepartment)
	page, err := h.caseUsecase.ListCases(r.Context(), req)
	writeList(w, page, err, "Cases")
}

// ListAppointments
// @Summary List appointments, newest first
// @Tags Records
// @Security BearerAuth
// @Produce json
// @Param status query string false "Booked, Attended or Cancelled"
// @Param department query string false "Department filter"
// @Router /appointments [get]
func (h *RecordHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	req := parseListRequest(r, filter.CategoryStatus, filter.CategoryDepartment)
	page, err := h.appointmentUsecase.ListAppointments(r.Context(), req)
	writeList(w, page, err, "Appointments")
}

// ListHospitalizations
// @Summary List hospitalizations with days hospitalized
// @Tags Records
// @Security BearerAuth
// @Produce json
// @Param ward query string false "Ward number"
// @Router /hospitalizations [get]
func (h *RecordHandler) ListHospitalizations(w http.ResponseWriter, r *http.Request) {
	req := parseListRequest(r, filter.CategoryWard)
	page, err := h.hospitalizationUsecase.ListHospitalizations(r.Context(), req)
	writeList(w, page, err, "Hospitalizations")
}

// ListPrescriptions
// @Summary List prescriptions with medications
// @Tags Records
// @Security BearerAuth
// @Produce json
// @Router /prescriptions [get]
func (h *RecordHandler) ListPrescriptions(w http.ResponseWriter, r *http.Request) {
	req := parseListRequest(r)
	page, err := h.prescriptionUsecase.ListPrescriptions(r.Context(), req)
	writeList(w, page, err, "Prescriptions")
}
