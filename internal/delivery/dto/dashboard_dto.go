package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Response DTOs

type StatusBucketResponse struct {
	Status  string          `json:"status"`
	Count   int             `json:"count"`
	Percent decimal.Decimal `json:"percent"`
}

type DashboardResponse struct {
	Totals             map[string]int64       `json:"totals"`
	AppointmentTotal   int                    `json:"appointment_total"`
	StatusDistribution []StatusBucketResponse `json:"status_distribution"`
	GeneratedAt        time.Time              `json:"generated_at"`
	Cached             bool                   `json:"cached"`
}
