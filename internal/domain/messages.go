package domain

import "fmt"

// Human-readable failure reasons shown to customers.
const (
	MsgNotFound     = "Tracking number not found. Please check and try again."
	MsgMissingInput = "Please select a booking and payment method."
)

// BookedMessage confirms a new booking.
func BookedMessage(id string) string {
	return fmt.Sprintf("Booking successful! Your tracking number is: %s", id)
}

// PaidMessage confirms a payment.
func PaidMessage(id string) string {
	return fmt.Sprintf("Payment successful! Your package %s is now in transit.", id)
}

// StatusUpdatedMessage confirms an admin status change.
func StatusUpdatedMessage(id string, status ShipmentStatus) string {
	return fmt.Sprintf("Booking %s status updated to %s", id, status)
}
