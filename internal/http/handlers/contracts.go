package handlers

import (
	"context"

	"rjcouriers-service-booking/internal/domain"
	"rjcouriers-service-booking/internal/service/booking"
)

type bookingUsecase interface {
	Estimate(weight float64, deliveryType domain.DeliveryType) float64
	Create(ctx context.Context, nb domain.NewBooking) (domain.Booking, error)
	Get(ctx context.Context, id string) (domain.Booking, error)
	List(ctx context.Context, status domain.ShipmentStatus) ([]domain.Booking, error)
	Payable(ctx context.Context) ([]domain.Booking, error)
	Track(ctx context.Context, id string) (domain.Booking, []domain.TrackingStep, error)
	Pay(ctx context.Context, id string, method domain.PaymentMethod) (domain.Booking, error)
}

// NewBookingUsecase wires a booking Service into a bookingUsecase.
func NewBookingUsecase(svc *booking.Service) bookingUsecase {
	return svc
}

type adminUsecase interface {
	Stats(ctx context.Context) (domain.Stats, error)
	SetStatus(ctx context.Context, id string, status domain.ShipmentStatus) (domain.Booking, error)
}

// NewAdminUsecase wires a booking Service into an adminUsecase.
func NewAdminUsecase(svc *booking.Service) adminUsecase {
	return svc
}
