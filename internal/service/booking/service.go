package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"rjcouriers-service-booking/internal/apperr"
	"rjcouriers-service-booking/internal/domain"
	"rjcouriers-service-booking/internal/logx"
	"rjcouriers-service-booking/internal/metrics"
	"rjcouriers-service-booking/internal/repository"
)

// Service coordinates booking rules: pricing, payment and status transitions.
type Service struct {
	repo             bookingRepository
	events           EventPublisher
	metrics          *metrics.Booking
	logger           logx.Logger
	operationTimeout time.Duration
	now              func() time.Time
	newEventID       func() string
}

// NewService creates and configures a booking Service.
func NewService(
	r bookingRepository,
	events EventPublisher,
	m *metrics.Booking,
	logger logx.Logger,
	timeout time.Duration,
) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if events == nil {
		events = nopPublisher{}
	}
	if m == nil {
		m = metrics.NewBooking()
	}
	logger = logx.OrNop(logger)
	return &Service{
		repo:             r,
		events:           events,
		metrics:          m,
		logger:           logger,
		operationTimeout: timeout,
		now:              func() time.Time { return time.Now().UTC() },
		newEventID:       uuid.NewString,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Estimate returns the price of a shipment before it is booked.
func (s *Service) Estimate(weight float64, deliveryType domain.DeliveryType) float64 {
	return domain.EstimateCost(domain.SanitizeWeight(weight), deliveryType)
}

// Create books a new shipment. Identity fields are stored as given;
// a weight that is not a finite number is stored as 0.
func (s *Service) Create(ctx context.Context, nb domain.NewBooking) (domain.Booking, error) {
	if nb.DeliveryType == "" {
		nb.DeliveryType = domain.DeliveryStandard
	}
	weight := domain.SanitizeWeight(nb.Weight)

	b := domain.Booking{
		Sender:        nb.Sender,
		Receiver:      nb.Receiver,
		PackageType:   nb.PackageType,
		Weight:        weight,
		DeliveryType:  nb.DeliveryType,
		Description:   nb.Description,
		Status:        domain.StatusPending,
		PaymentStatus: domain.PaymentUnpaid,
		Cost:          s.Estimate(weight, nb.DeliveryType),
		BookingDate:   domain.Date(s.now()),
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if _, err := s.repo.Create(ctx, &b); err != nil {
		return domain.Booking{}, fmt.Errorf("create booking: %w", err)
	}

	s.metrics.Created.WithLabelValues(string(b.DeliveryType)).Inc()
	s.logger.Info("booking created",
		logx.String("event", string(domain.EventBookingCreated)),
		logx.String("booking_id", b.ID),
		logx.String("delivery_type", string(b.DeliveryType)),
		logx.Float64("weight", b.Weight),
		logx.Float64("cost", b.Cost),
	)
	s.publish(ctx, domain.EventBookingCreated, b)
	return b, nil
}

// Get finds a booking by its tracking number.
func (s *Service) Get(ctx context.Context, id string) (domain.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Booking{}, apperr.ErrNotFound
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	b, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Booking{}, err
	}
	if b == nil {
		return domain.Booking{}, apperr.ErrNotFound
	}
	return *b, nil
}

// List returns bookings in creation order, optionally narrowed to one status.
func (s *Service) List(ctx context.Context, status domain.ShipmentStatus) ([]domain.Booking, error) {
	if status != "" && !status.Valid() {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx, repository.ListFilter{Status: status})
}

// Payable returns the bookings that still await payment.
func (s *Service) Payable(ctx context.Context) ([]domain.Booking, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx, repository.ListFilter{PaymentStatus: domain.PaymentUnpaid})
}

// Track returns the booking together with its derived tracking steps.
func (s *Service) Track(ctx context.Context, id string) (domain.Booking, []domain.TrackingStep, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return domain.Booking{}, nil, err
	}
	return b, domain.TrackingSteps(b), nil
}

// Stats returns the admin dashboard counters.
func (s *Service) Stats(ctx context.Context) (domain.Stats, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	list, err := s.repo.List(ctx, repository.ListFilter{})
	if err != nil {
		return domain.Stats{}, err
	}
	return domain.CountStats(list), nil
}

// Pay records a simulated payment. Any non-empty method is accepted. The
// booking becomes paid and moves to in-transit regardless of its current
// status; repeating the call is harmless.
func (s *Service) Pay(ctx context.Context, id string, method domain.PaymentMethod) (domain.Booking, error) {
	id = strings.TrimSpace(id)
	method = domain.PaymentMethod(strings.TrimSpace(string(method)))
	if id == "" || method == "" {
		return domain.Booking{}, apperr.ErrMissingInput
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	b, err := s.repo.Update(ctx, id, func(b *domain.Booking) error {
		b.PaymentStatus = domain.PaymentPaid
		b.Status = domain.StatusInTransit
		return nil
	})
	if err != nil {
		return domain.Booking{}, fmt.Errorf("pay booking %s: %w", id, err)
	}
	if b == nil {
		return domain.Booking{}, apperr.ErrNotFound
	}

	s.metrics.Payments.WithLabelValues(method.Label()).Inc()
	s.metrics.StatusChanges.WithLabelValues(string(b.Status), string(domain.SourcePayment)).Inc()
	s.logger.Info("booking paid",
		logx.String("event", string(domain.EventBookingPaid)),
		logx.String("booking_id", b.ID),
		logx.String("method", string(method)),
		logx.Float64("amount", b.Cost),
	)
	s.publish(ctx, domain.EventBookingPaid, *b)
	return *b, nil
}

// SetStatus is the admin override: any known status may be set at any time.
func (s *Service) SetStatus(ctx context.Context, id string, status domain.ShipmentStatus) (domain.Booking, error) {
	return s.setStatus(ctx, id, status, domain.SourceAdmin)
}

// ApplyCarrierStatus records a status reported by the carrier.
func (s *Service) ApplyCarrierStatus(ctx context.Context, id string, status domain.ShipmentStatus) (domain.Booking, error) {
	return s.setStatus(ctx, id, status, domain.SourceCarrier)
}

func (s *Service) setStatus(
	ctx context.Context,
	id string,
	status domain.ShipmentStatus,
	source domain.StatusSource,
) (domain.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Booking{}, apperr.ErrNotFound
	}
	if !status.Valid() {
		return domain.Booking{}, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var previous domain.ShipmentStatus
	b, err := s.repo.Update(ctx, id, func(b *domain.Booking) error {
		previous = b.Status
		b.Status = status
		return nil
	})
	if err != nil {
		return domain.Booking{}, fmt.Errorf("set status of %s: %w", id, err)
	}
	if b == nil {
		return domain.Booking{}, apperr.ErrNotFound
	}

	s.metrics.StatusChanges.WithLabelValues(string(status), string(source)).Inc()
	s.logger.Info("booking status changed",
		logx.String("event", string(domain.EventBookingStatusChanged)),
		logx.String("booking_id", b.ID),
		logx.String("from", string(previous)),
		logx.String("to", string(status)),
		logx.String("source", string(source)),
	)
	s.publish(ctx, domain.EventBookingStatusChanged, *b)
	return *b, nil
}

func (s *Service) publish(ctx context.Context, typ domain.EventType, b domain.Booking) {
	ev := domain.Event{
		ID:            s.newEventID(),
		Type:          typ,
		BookingID:     b.ID,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		Cost:          b.Cost,
		OccurredAt:    s.now(),
	}
	if err := s.events.Publish(ctx, ev); err != nil {
		s.logger.Warn("booking event not published",
			logx.String("event_type", string(typ)),
			logx.String("booking_id", b.ID),
			logx.Err(err),
		)
	}
}
