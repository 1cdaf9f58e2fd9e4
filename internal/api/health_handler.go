package api

import (
	"context"
	"net/http"
	"time"

	"github.com/phrazzld/tasks-api/internal/api/shared"
)

// LivenessMessage is the body of GET /.
const LivenessMessage = "Server is running"

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness and readiness endpoints.
type HealthHandler struct {
	store   Pinger
	timeout time.Duration
}

// NewHealthHandler creates a HealthHandler that pings store with the given
// timeout on every readiness check.
func NewHealthHandler(store Pinger, timeout time.Duration) *HealthHandler {
	return &HealthHandler{store: store, timeout: timeout}
}

// Liveness handles GET /. It never touches the store.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithText(w, r, http.StatusOK, LivenessMessage)
}

// Health handles GET /health: 200 "OK" when the store answers a ping,
// 503 otherwise.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusServiceUnavailable, "store unavailable", err,
			shared.WithDetails(storeMessage(err)))
		return
	}
	shared.RespondWithText(w, r, http.StatusOK, "OK")
}
