package handlers

import (
	"bytes"
	"net/http"
	"strings"

	"rjcouriers-service-booking/internal/domain"
	"rjcouriers-service-booking/internal/logx"
	"rjcouriers-service-booking/internal/receipt"
)

// BookingHandler serves customer-facing booking endpoints.
type BookingHandler struct {
	logger logx.Logger
	uc     bookingUsecase
}

// NewBookingHandler wires a bookingUsecase into HTTP handlers.
func NewBookingHandler(logger logx.Logger, uc bookingUsecase) *BookingHandler {
	logger = logx.OrNop(logger)
	return &BookingHandler{logger: logger, uc: uc}
}

// Estimate handles GET /estimate.
func (h *BookingHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	weight := domain.ParseWeight(q.Get("weight"))
	dt := domain.DeliveryType(strings.TrimSpace(q.Get("delivery_type")))

	cost := h.uc.Estimate(weight, dt)
	writeJSON(h.logger, w, r, http.StatusOK, estimateResponse{
		Cost:      cost,
		Formatted: domain.FormatMoney(cost),
	})
}

// Create handles POST /bookings.
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	b, err := h.uc.Create(r.Context(), req.toModel())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	w.Header().Set("Location", "/bookings/"+b.ID)
	writeJSON(h.logger, w, r, http.StatusCreated, bookingMessageResponse{
		Message: domain.BookedMessage(b.ID),
		Booking: bookingToResponse(b),
	})
}

// List handles GET /bookings; ?status=all or no status lists everything.
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	status := strings.TrimSpace(r.URL.Query().Get("status"))
	if strings.EqualFold(status, "all") {
		status = ""
	}

	list, err := h.uc.List(r.Context(), domain.ShipmentStatus(status))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, bookingsToResponse(list))
}

// Payable handles GET /bookings/payable.
func (h *BookingHandler) Payable(w http.ResponseWriter, r *http.Request) {
	list, err := h.uc.Payable(r.Context())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, summariesToResponse(list))
}

// Get handles GET /bookings/{id}.
func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	b, err := h.uc.Get(r.Context(), idFromURL(r, "id"))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, bookingDetailsResponse{
		Booking: bookingToResponse(b),
		Payment: summaryToResponse(b.Summary()),
	})
}

// Track handles GET /bookings/{id}/tracking.
func (h *BookingHandler) Track(w http.ResponseWriter, r *http.Request) {
	b, steps, err := h.uc.Track(r.Context(), idFromURL(r, "id"))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, trackingResponse{
		Booking: bookingToResponse(b),
		Steps:   stepsToResponse(steps),
	})
}

// Receipt handles GET /bookings/{id}/receipt and returns a PDF.
func (h *BookingHandler) Receipt(w http.ResponseWriter, r *http.Request) {
	b, err := h.uc.Get(r.Context(), idFromURL(r, "id"))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := receipt.Render(&buf, b); err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `inline; filename="receipt-`+b.ID+`.pdf"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Error("receipt write error",
			logx.String("req_id", reqID(r.Context())),
			logx.Err(err),
		)
	}
}

// Pay handles POST /payments.
func (h *BookingHandler) Pay(w http.ResponseWriter, r *http.Request) {
	var req payRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	b, err := h.uc.Pay(r.Context(), req.BookingID, req.Method)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, bookingMessageResponse{
		Message: domain.PaidMessage(b.ID),
		Booking: bookingToResponse(b),
	})
}
