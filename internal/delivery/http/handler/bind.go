package handler

import (
	"encoding/json"
	"net/http"

	"hospital-admin/pkg/response"
	"hospital-admin/pkg/validator"
)

// bind decodes the JSON body into dst and validates it. On failure it has already written
// the 400 response and returns false.
func bind(w http.ResponseWriter, r *http.Request, v *validator.CustomValidator, dst interface{}) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return false
	}

	if err := v.Validate(dst); err != nil {
		response.ValidationError(w, v.FormatValidationErrors(err))
		return false
	}
	return true
}
