package handler

import (
	"context"
	"net/http"
	"time"

	"hospital-admin/pkg/response"

	"github.com/sirupsen/logrus"
)

// Pinger is satisfied by the Postgres and Redis checks wired in bootstrap.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

type HealthHandler struct {
	log      *logrus.Logger
	checks   map[string]Pinger
	deadline time.Duration
}

func NewHealthHandler(log *logrus.Logger, checks map[string]Pinger) *HealthHandler {
	return &HealthHandler{
		log:      log,
		checks:   checks,
		deadline: 2 * time.Second,
	}
}

// Check
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /health [get]
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.deadline)
	defer cancel()

	status := make(map[string]string, len(h.checks))
	healthy := true
	for name, check := range h.checks {
		if err := check.Ping(ctx); err != nil {
			h.log.WithField("dependency", name).Warnf("Health check failed: %+v", err)
			status[name] = "down"
			healthy = false
			continue
		}
		status[name] = "up"
	}

	if !healthy {
		response.ErrorWithData(w, http.StatusServiceUnavailable, "Service is degraded", status, nil)
		return
	}

	response.Success(w, http.StatusOK, "Service is healthy", status)
}
