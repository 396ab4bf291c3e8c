package carrier

import "time"

// Update is a single shipment status report from the carrier.
type Update struct {
	BookingID  string
	Status     string
	OccurredAt time.Time
}
