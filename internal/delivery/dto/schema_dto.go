package dto

import "hospital-admin/internal/domain/schema"

// Response DTOs

type SchemaResponse struct {
	Table  schema.Table      `json:"table"`
	Insert schema.Projection `json:"insert"`
	Update schema.Projection `json:"update"`
}

type SchemaListResponse struct {
	Tables []string `json:"tables"`
}
