package dto

import "hospital-admin/internal/page"

// Request DTOs

// ListRequest carries the user input of a list page. Filters maps a category
// (department, gender, status, ward) to the selected value.
type ListRequest struct {
	Search    string
	Filters   map[string]string
	Order     string
	Direction string
}

// Response DTOs

type PageResponse[T any] struct {
	State    page.State          `json:"state"`
	Rows     []T                 `json:"rows"`
	Total    int                 `json:"total"`
	Filtered int                 `json:"filtered"`
	Options  map[string][]string `json:"options"`
}
