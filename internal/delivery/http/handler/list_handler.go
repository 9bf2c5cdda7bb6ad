package handler

import (
	"errors"
	"net/http"
	"strings"

	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/usecase"
	"hospital-admin/pkg/response"
)

// parseListRequest reads search, order, direction and the given category filters from the
// query string. Blank filter values mean "all" and are dropped.
func parseListRequest(r *http.Request, categories ...string) *dto.ListRequest {
	q := r.URL.Query()
	req := &dto.ListRequest{
		Search:    q.Get("search"),
		Filters:   make(map[string]string, len(categories)),
		Order:     strings.TrimSpace(q.Get("order")),
		Direction: q.Get("direction"),
	}
	for _, c := range categories {
		if v := q.Get(c); v != "" {
			req.Filters[c] = v
		}
	}
	return req
}

// writeList renders the outcome of a list usecase. A fetch failure still carries the page in
// its error state so clients can show the failure inline.
func writeList[T any](w http.ResponseWriter, page *dto.PageResponse[T], err error, entity string) {
	if err == nil {
		response.Success(w, http.StatusOK, entity+" retrieved successfully", page)
		return
	}

	if errors.Is(err, usecase.ErrInvalidListQuery) {
		response.Error(w, http.StatusBadRequest, "Invalid list query", err.Error())
		return
	}

	var fetchErr *usecase.FetchError
	if errors.As(err, &fetchErr) {
		response.UpstreamError(w, fetchErr.Timeout(), "Failed to fetch "+fetchErr.Entity, page, fetchErr.Err.Error())
		return
	}

	response.InternalServerError(w, "Failed to get "+strings.ToLower(entity))
}
