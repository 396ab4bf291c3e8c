package domain

import "time"

// TrackingStep describes one milestone of a shipment.
type TrackingStep struct {
	Title       string
	Description string
	Completed   bool
	Current     bool
	Timestamp   *time.Time
}

// TrackingSteps derives the five tracking milestones from the booking state.
// Nothing is stored; every call recomputes the sequence.
func TrackingSteps(b Booking) []TrackingStep {
	booked := b.BookingDate
	paid := b.PaymentStatus == PaymentPaid

	var paidAt *time.Time
	if paid {
		t := b.BookingDate
		paidAt = &t
	}

	return []TrackingStep{
		{
			Title:       "Booking Confirmed",
			Description: "Your package booking has been confirmed",
			Completed:   true,
			Timestamp:   &booked,
		},
		{
			Title:       "Payment Processed",
			Description: "Payment has been received and processed",
			Completed:   paid,
			Timestamp:   paidAt,
		},
		{
			Title:       "Package Picked Up",
			Description: "Package has been collected from sender",
			Completed:   b.Status != StatusPending,
			Current:     b.Status == StatusInTransit,
		},
		{
			Title:       "In Transit",
			Description: "Package is on its way to destination",
			Completed:   b.Status == StatusDelivered,
			Current:     b.Status == StatusInTransit,
		},
		{
			Title:       "Delivered",
			Description: "Package has been delivered successfully",
			Completed:   b.Status == StatusDelivered,
		},
	}
}
