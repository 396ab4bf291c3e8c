package carrier

import (
	"context"
	"errors"
	"strings"

	"rjcouriers-service-booking/internal/apperr"
	"rjcouriers-service-booking/internal/domain"
	"rjcouriers-service-booking/internal/logx"
	"rjcouriers-service-booking/internal/service/booking"
)

// StatusPort is the subset of the booking service the processor drives.
type StatusPort interface {
	ApplyCarrierStatus(ctx context.Context, id string, status domain.ShipmentStatus) (domain.Booking, error)
}

// Processor applies carrier status reports to bookings.
type Processor struct {
	bookings StatusPort
	table    *statusTable
	logger   logx.Logger
}

// NewProcessorWithDeps creates a Processor from interfaces (handy for tests).
func NewProcessorWithDeps(bookings StatusPort, logger logx.Logger) *Processor {
	logger = logx.OrNop(logger)
	return &Processor{bookings: bookings, table: newStatusTable(), logger: logger}
}

// NewProcessor creates a Processor backed by the booking service.
func NewProcessor(svc *booking.Service, logger logx.Logger) *Processor {
	return NewProcessorWithDeps(svc, logger)
}

// Handle processes a single carrier update. Unknown statuses and unknown
// bookings are skipped; other failures are returned so the update is retried.
func (p *Processor) Handle(ctx context.Context, u Update) error {
	id := strings.TrimSpace(u.BookingID)
	target, ok := p.table.get(u.Status)
	if !ok {
		p.logger.Debug("carrier status ignored",
			logx.String("booking_id", id),
			logx.String("status", u.Status),
		)
		return nil
	}

	_, err := p.bookings.ApplyCarrierStatus(ctx, id, target)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperr.ErrNotFound):
		p.logger.Warn("carrier update for unknown booking",
			logx.String("booking_id", id),
			logx.String("status", u.Status),
		)
		return nil
	default:
		return err
	}
}
