package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"rjcouriers-service-booking/internal/metrics"
)

type metricsOut struct {
	dig.Out
	Booking           *metrics.Booking
	RateLimitExceeded prometheus.Counter `name:"rate_limit_exceeded_total"`
	PublishRetries    prometheus.Counter `name:"event_publish_retries_total"`
}

func newMetrics(reg prometheus.Registerer) (metricsOut, error) {
	out := metricsOut{
		Booking:           metrics.NewBooking(),
		RateLimitExceeded: metrics.NewRateLimitExceededTotal(),
		PublishRetries:    metrics.NewPublishRetriesTotal(),
	}
	if err := out.Booking.Register(reg); err != nil {
		return metricsOut{}, err
	}
	for _, c := range []prometheus.Collector{out.RateLimitExceeded, out.PublishRetries} {
		if err := reg.Register(c); err != nil {
			return metricsOut{}, err
		}
	}
	return out, nil
}
