package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/dataworks/internal/adapters/http/dto"
	"github.com/jsamuelsen11/dataworks/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// HealthHandler handles liveness and readiness HTTP endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.HealthResponse{Status: statusOK})
}

// Readiness handles GET /health/ready. Returns 200 if all checks pass,
// 503 if any check fails.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	status := statusReady
	code := http.StatusOK
	for _, err := range results {
		if err != nil {
			status = statusNotReady
			code = http.StatusServiceUnavailable
			break
		}
	}

	writeJSON(w, code, dto.ToHealthResponse(status, statusOK, results))
}
