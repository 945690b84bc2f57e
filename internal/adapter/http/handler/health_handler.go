package handler

import (
	"context"
	"net/http"
	"time"
)

// HealthChecker reports whether a backing dependency is reachable.
type HealthChecker func(ctx context.Context) error

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	checks map[string]HealthChecker
}

// NewHealthHandler creates a new HealthHandler. Each named check is
// probed on readiness; liveness never touches dependencies.
func NewHealthHandler(checks map[string]HealthChecker) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// Liveness handles GET /health.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness handles GET /ready.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	result := make(map[string]string, len(h.checks))
	ready := true

	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			result[name] = err.Error()
			ready = false

			continue
		}

		result[name] = "ok"
	}

	status := http.StatusOK
	if !ready {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, result)
}
