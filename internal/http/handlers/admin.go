package handlers

import (
	"net/http"

	"rjcouriers-service-booking/internal/domain"
	"rjcouriers-service-booking/internal/logx"
)

// AdminHandler serves the staff dashboard endpoints.
type AdminHandler struct {
	logger logx.Logger
	uc     adminUsecase
}

// NewAdminHandler wires an adminUsecase into HTTP handlers.
func NewAdminHandler(logger logx.Logger, uc adminUsecase) *AdminHandler {
	logger = logx.OrNop(logger)
	return &AdminHandler{logger: logger, uc: uc}
}

// Stats handles GET /admin/stats.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.uc.Stats(r.Context())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, statsToResponse(st))
}

// SetStatus handles PATCH /admin/bookings/{id}/status.
func (h *AdminHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req setStatusRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	b, err := h.uc.SetStatus(r.Context(), idFromURL(r, "id"), req.Status)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, bookingMessageResponse{
		Message: domain.StatusUpdatedMessage(b.ID, b.Status),
		Booking: bookingToResponse(b),
	})
}
