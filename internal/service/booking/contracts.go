//go:generate mockgen -source=contracts.go -destination=booking_mocks_test.go -package=booking_test

package booking

import (
	"context"

	"rjcouriers-service-booking/internal/domain"
	"rjcouriers-service-booking/internal/repository"
)

type bookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (string, error)
	Get(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, f repository.ListFilter) ([]domain.Booking, error)
	Update(ctx context.Context, id string, fn func(b *domain.Booking) error) (*domain.Booking, error)
}

// EventPublisher delivers booking lifecycle events to other services.
type EventPublisher interface {
	Publish(ctx context.Context, ev domain.Event) error
}

type nopPublisher struct{}

// NopPublisher returns a publisher that drops every event.
func NopPublisher() EventPublisher { return nopPublisher{} }

func (nopPublisher) Publish(context.Context, domain.Event) error { return nil }
