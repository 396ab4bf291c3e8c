package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"rjcouriers-service-booking/internal/config"
	"rjcouriers-service-booking/internal/logx"
	"rjcouriers-service-booking/internal/service/booking"
	"rjcouriers-service-booking/internal/service/carrier"
	"rjcouriers-service-booking/internal/transport/kafka"
)

// producerCloser drains queued events and releases the producer. It is a
// no-op when Kafka is off.
type producerCloser func() error

type dialPublisherFunc func(brokers []string, topic string) (*kafka.Publisher, error)

type publisherIn struct {
	dig.In
	Config  *config.Config
	Logger  logx.Logger
	Retries prometheus.Counter `name:"event_publish_retries_total"`
}

type publisherOut struct {
	dig.Out
	Publisher booking.EventPublisher
	Closer    producerCloser
}

func newEventPublisher(dial dialPublisherFunc) func(publisherIn) (publisherOut, error) {
	return func(in publisherIn) (publisherOut, error) {
		k := in.Config.Kafka
		if !k.Enabled() {
			in.Logger.Info("kafka brokers not configured, booking events are not published")
			return publisherOut{
				Publisher: booking.NopPublisher(),
				Closer:    func() error { return nil },
			}, nil
		}
		p, err := dial(k.Brokers, k.EventsTopic)
		if err != nil {
			return publisherOut{}, err
		}
		retrying := kafka.NewRetryingPublisher(p, in.Logger, in.Retries, kafka.RetryConfig{
			MaxAttempts: k.Publish.MaxAttempts,
			BaseDelay:   k.Publish.BaseDelay,
			MaxDelay:    k.Publish.MaxDelay,
		})
		queued := kafka.NewQueuedPublisher(retrying, in.Logger, k.QueueSize)
		return publisherOut{
			Publisher: queued,
			Closer: func() error {
				queued.Close()
				return p.Close()
			},
		}, nil
	}
}

func newStatusConsumer(cfg *config.Config, logger logx.Logger, proc *carrier.Processor) (*kafka.Consumer, error) {
	k := cfg.Kafka
	return kafka.NewConsumer(logger, k.Brokers, k.GroupID, k.StatusTopic, proc.Handle)
}
