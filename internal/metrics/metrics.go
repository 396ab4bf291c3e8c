package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewPublishRetriesTotal returns a Prometheus counter for the number of event publish retries
func NewPublishRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "event_publish_retries_total",
		Help: "Total number of retry attempts performed by the event publisher",
	})
}

// Booking groups the business counters of the booking service.
type Booking struct {
	Created       *prometheus.CounterVec
	Payments      *prometheus.CounterVec
	StatusChanges *prometheus.CounterVec
}

// NewBooking creates booking counters. Call Register to expose them.
func NewBooking() *Booking {
	return &Booking{
		Created: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Total number of created bookings",
		}, []string{"delivery_type"}),
		Payments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "payments_total",
			Help: "Total number of processed payments",
		}, []string{"method"}),
		StatusChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_status_changes_total",
			Help: "Total number of booking status changes",
		}, []string{"status", "source"}),
	}
}

// Register registers the counters on reg.
func (b *Booking) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{b.Created, b.Payments, b.StatusChanges} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
