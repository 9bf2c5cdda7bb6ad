package handler

import (
	"errors"
	"net/http"
	"strconv"

	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/usecase"
	"hospital-admin/pkg/response"

	"github.com/gorilla/mux"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
	}
}

// SearchAuditLogs
// @Summary Read the audit trail, newest first
// @Tags Audit
// @Security BearerAuth
// @Produce json
// @Param action query string false "Exact action, e.g. patient.register"
// @Param user_id query int false "Acting user"
// @Param before query int false "Cursor from next_before"
// @Param limit query int false "Page size, 1-200 (default 50)"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /audit-logs [get]
func (h *AuditLogHandler) SearchAuditLogs(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	q := &dto.AuditLogQuery{Action: params.Get("action")}

	invalid := make(map[string]string)
	if v := params.Get("user_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			invalid["user_id"] = "user_id must be an integer"
		} else {
			q.UserID = &id
		}
	}
	if v := params.Get("before"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			invalid["before"] = "before must be an integer"
		} else {
			q.Before = &id
		}
	}
	if v := params.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			invalid["limit"] = "limit must be an integer"
		} else {
			q.Limit = limit
		}
	}
	if len(invalid) > 0 {
		response.ValidationError(w, invalid)
		return
	}

	trail, err := h.auditLogUsecase.SearchAuditLogs(r.Context(), q)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidAuditPage) {
			response.ValidationError(w, map[string]string{"limit": err.Error()})
			return
		}
		response.InternalServerError(w, "Failed to get audit logs")
		return
	}

	response.Success(w, http.StatusOK, "Audit logs retrieved successfully", trail)
}

func (h *AuditLogHandler) GetAuditLog(w http.ResponseWriter, r *http.Request) {
	auditLogID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || auditLogID <= 0 {
		response.Error(w, http.StatusBadRequest, "Invalid audit log ID", nil)
		return
	}

	entry, err := h.auditLogUsecase.GetAuditLog(r.Context(), auditLogID)
	switch {
	case errors.Is(err, usecase.ErrAuditLogNotFound):
		response.NotFound(w, "Audit log not found")
	case err != nil:
		response.InternalServerError(w, "Failed to get audit log")
	default:
		response.Success(w, http.StatusOK, "Audit log retrieved successfully", entry)
	}
}
