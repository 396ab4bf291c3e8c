package handlers

import (
	"net/http"

	"rjcouriers-service-booking/internal/logx"
)

// Handlers serves the health endpoints and the router fallbacks.
type Handlers struct {
	Logger logx.Logger
}

func New(logger logx.Logger) *Handlers {
	return &Handlers{Logger: logx.OrNop(logger)}
}

// Ping answers GET /ping with {"message":"pong"}.
func (h *Handlers) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.Logger, w, r, http.StatusOK, map[string]string{"message": "pong"})
}

// HealthcheckHead answers HEAD /healthcheck with an empty 204.
func (h *Handlers) HealthcheckHead(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(h.Logger, w, r, http.StatusNotFound, "route not found")
}

// MethodNotAllowed is used when the path exists but the verb does not.
func (h *Handlers) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(h.Logger, w, r, http.StatusMethodNotAllowed, "method not allowed")
}
