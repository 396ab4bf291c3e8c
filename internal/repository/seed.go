package repository

import (
	"time"

	"rjcouriers-service-booking/internal/domain"
)

// SampleNextSeq is the sequence value that follows the sample bookings.
const SampleNextSeq = 4

// SampleBookings returns the demo data the service starts with.
func SampleBookings() []domain.Booking {
	return []domain.Booking{
		{
			ID:            "RJ001",
			Sender:        domain.Party{Name: "John Smith", Phone: "+1234567890", Address: "123 Main St, New York, NY"},
			Receiver:      domain.Party{Name: "Jane Doe", Phone: "+1987654321", Address: "456 Oak Ave, Los Angeles, CA"},
			PackageType:   "document",
			Weight:        0.5,
			DeliveryType:  domain.DeliveryExpress,
			Description:   "Important legal documents",
			Status:        domain.StatusDelivered,
			PaymentStatus: domain.PaymentPaid,
			Cost:          25.00,
			BookingDate:   day(2024, time.January, 15),
		},
		{
			ID:            "RJ002",
			Sender:        domain.Party{Name: "Alice Johnson", Phone: "+1122334455", Address: "789 Pine St, Chicago, IL"},
			Receiver:      domain.Party{Name: "Bob Wilson", Phone: "+1555666777", Address: "321 Elm St, Miami, FL"},
			PackageType:   "parcel",
			Weight:        2.3,
			DeliveryType:  domain.DeliveryStandard,
			Description:   "Birthday gift",
			Status:        domain.StatusInTransit,
			PaymentStatus: domain.PaymentPaid,
			Cost:          35.50,
			BookingDate:   day(2024, time.January, 16),
		},
		{
			ID:            "RJ003",
			Sender:        domain.Party{Name: "Mike Brown", Phone: "+1999888777", Address: "555 Cedar Rd, Seattle, WA"},
			Receiver:      domain.Party{Name: "Sarah Davis", Phone: "+1444333222", Address: "777 Maple Dr, Boston, MA"},
			PackageType:   "electronics",
			Weight:        1.8,
			DeliveryType:  domain.DeliveryOvernight,
			Description:   "Laptop computer",
			Status:        domain.StatusPending,
			PaymentStatus: domain.PaymentUnpaid,
			Cost:          75.00,
			BookingDate:   day(2024, time.January, 17),
		},
	}
}

// NewSampleBookingRepo returns a repository preloaded with SampleBookings.
func NewSampleBookingRepo() *BookingRepo {
	return NewBookingRepo(SampleBookings(), SampleNextSeq)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
