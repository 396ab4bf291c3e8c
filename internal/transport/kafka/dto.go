package kafka

import (
	"strings"
	"time"

	"rjcouriers-service-booking/internal/domain"
	"rjcouriers-service-booking/internal/service/carrier"
)

// StatusUpdateDTO is the wire form of a carrier status report.
type StatusUpdateDTO struct {
	BookingID  string    `json:"booking_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ToDomain converts StatusUpdateDTO to carrier.Update
func ToDomain(dto StatusUpdateDTO) carrier.Update {
	return carrier.Update{
		BookingID:  strings.TrimSpace(dto.BookingID),
		Status:     strings.TrimSpace(dto.Status),
		OccurredAt: dto.OccurredAt,
	}
}

// EventDTO is the wire form of a published booking event.
type EventDTO struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	BookingID     string    `json:"booking_id"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	Cost          float64   `json:"cost"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// FromDomain converts domain.Event to EventDTO
func FromDomain(ev domain.Event) EventDTO {
	return EventDTO{
		ID:            ev.ID,
		Type:          string(ev.Type),
		BookingID:     ev.BookingID,
		Status:        string(ev.Status),
		PaymentStatus: string(ev.PaymentStatus),
		Cost:          ev.Cost,
		OccurredAt:    ev.OccurredAt,
	}
}
