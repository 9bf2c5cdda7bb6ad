package handler

import (
	"errors"
	"net/http"

	"hospital-admin/internal/domain/schema"
	"hospital-admin/internal/usecase"
	"hospital-admin/pkg/response"

	"github.com/gorilla/mux"
)

type SchemaHandler struct {
	schemaUsecase usecase.SchemaUsecase
}

func NewSchemaHandler(schemaUsecase usecase.SchemaUsecase) *SchemaHandler {
	return &SchemaHandler{
		schemaUsecase: schemaUsecase,
	}
}

func (h *SchemaHandler) ListTables(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Tables retrieved successfully", h.schemaUsecase.ListTables())
}

func (h *SchemaHandler) GetTable(w http.ResponseWriter, r *http.Request) {
	table, err := h.schemaUsecase.GetTable(mux.Vars(r)["table"])
	if err != nil {
		if errors.Is(err, schema.ErrUnknownTable) {
			response.NotFound(w, "Table not found")
			return
		}
		response.InternalServerError(w, "Failed to get table")
		return
	}

	response.Success(w, http.StatusOK, "Table retrieved successfully", table)
}
