package handler

import (
	"errors"
	"net/http"

	"hospital-admin/internal/usecase"
	"hospital-admin/pkg/response"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
	}
}

// GetSummary handles the dashboard
// @Summary Table totals and appointment status distribution
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /dashboard [get]
func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboardUsecase.GetSummary(r.Context())
	if err != nil {
		var fetchErr *usecase.FetchError
		if errors.As(err, &fetchErr) {
			response.UpstreamError(w, fetchErr.Timeout(), "Failed to fetch "+fetchErr.Entity, nil, fetchErr.Err.Error())
			return
		}
		response.InternalServerError(w, "Failed to get dashboard")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", summary)
}
