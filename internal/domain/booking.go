package domain

import (
	"fmt"
	"time"
)

// IDPrefix is the prefix of every tracking number.
const IDPrefix = "RJ"

// DateLayout is the layout used to render booking dates.
const DateLayout = "2006-01-02"

// Party is a sender or receiver of a shipment.
type Party struct {
	Name    string
	Phone   string
	Address string
}

// Booking represents one shipment request.
type Booking struct {
	ID            string
	Sender        Party
	Receiver      Party
	PackageType   string
	Weight        float64
	DeliveryType  DeliveryType
	Description   string
	Status        ShipmentStatus
	PaymentStatus PaymentStatus
	Cost          float64
	BookingDate   time.Time
}

// NewBooking carries the user-supplied fields of a booking request.
type NewBooking struct {
	Sender       Party
	Receiver     Party
	PackageType  string
	Weight       float64
	DeliveryType DeliveryType
	Description  string
}

// PaymentSummary is what a customer sees after picking a booking to pay for.
type PaymentSummary struct {
	BookingID    string
	Amount       float64
	SenderName   string
	ReceiverName string
}

// Stats aggregates booking counters for the admin dashboard.
type Stats struct {
	Total     int
	Pending   int
	InTransit int
	Delivered int
	Paid      int
}

// FormatID renders a tracking number from a sequence value.
func FormatID(seq int) string {
	return fmt.Sprintf("%s%03d", IDPrefix, seq)
}

// Summary returns the payment summary of the booking.
func (b Booking) Summary() PaymentSummary {
	return PaymentSummary{
		BookingID:    b.ID,
		Amount:       b.Cost,
		SenderName:   b.Sender.Name,
		ReceiverName: b.Receiver.Name,
	}
}

// Date truncates t to a calendar day in UTC.
func Date(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CountStats computes dashboard counters over the given bookings.
func CountStats(list []Booking) Stats {
	st := Stats{Total: len(list)}
	for _, b := range list {
		switch b.Status {
		case StatusPending:
			st.Pending++
		case StatusInTransit:
			st.InTransit++
		case StatusDelivered:
			st.Delivered++
		}
		if b.PaymentStatus == PaymentPaid {
			st.Paid++
		}
	}
	return st
}
