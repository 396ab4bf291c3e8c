package domain

import "time"

// EventType names a booking lifecycle event.
type EventType string

// List of published booking events
const (
	EventBookingCreated       EventType = "booking_created"
	EventBookingPaid          EventType = "booking_paid"
	EventBookingStatusChanged EventType = "booking_status_changed"
)

// Event is a booking lifecycle notification.
type Event struct {
	ID            string
	Type          EventType
	BookingID     string
	Status        ShipmentStatus
	PaymentStatus PaymentStatus
	Cost          float64
	OccurredAt    time.Time
}

// StatusSource tells who moved a booking to a new status.
type StatusSource string

// List of status change sources
const (
	SourcePayment StatusSource = "payment"
	SourceAdmin   StatusSource = "admin"
	SourceCarrier StatusSource = "carrier"
)
