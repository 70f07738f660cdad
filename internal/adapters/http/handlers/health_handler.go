package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/relationship-registry/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
	required map[string]bool
}

// NewHealthHandler creates a HealthHandler. Only checks named in required
// affect readiness; the others are reported but informational. With no
// names given every check is required.
func NewHealthHandler(registry ports.HealthRegistry, required ...string) *HealthHandler {
	h := &HealthHandler{registry: registry}
	if len(required) > 0 {
		h.required = make(map[string]bool, len(required))
		for _, name := range required {
			h.required[name] = true
		}
	}
	return h
}

// Liveness handles GET /health/live. Always 200.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready: 200 when every required check
// passes, 503 otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	checks := make(map[string]string, len(results))
	ready := true
	for name, err := range results {
		if err == nil {
			checks[name] = statusOK
			continue
		}
		checks[name] = err.Error()
		if h.required == nil || h.required[name] {
			ready = false
		}
	}

	status, code := statusReady, http.StatusOK
	if !ready {
		status, code = statusNotReady, http.StatusServiceUnavailable
	}

	writeJSON(w, r, code, map[string]any{
		"status": status,
		"checks": checks,
	})
}
