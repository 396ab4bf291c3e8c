package kafka

import (
	"context"
	"errors"
	"sync"

	"rjcouriers-service-booking/internal/domain"
	"rjcouriers-service-booking/internal/logx"
)

var (
	// ErrQueueFull is returned when the publish queue has no free slot.
	ErrQueueFull = errors.New("kafka: publish queue full")
	// ErrPublisherClosed is returned by Publish after Close.
	ErrPublisherClosed = errors.New("kafka: publisher closed")
)

// QueuedPublisher hands events to a background worker so callers never wait
// on the broker. Publish only enqueues; delivery errors are logged.
type QueuedPublisher struct {
	next   publisher
	logger logx.Logger
	queue  chan domain.Event

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

// NewQueuedPublisher starts the worker. size below 1 means 1.
func NewQueuedPublisher(next publisher, logger logx.Logger, size int) *QueuedPublisher {
	if size < 1 {
		size = 1
	}
	q := &QueuedPublisher{
		next:   next,
		logger: logx.OrNop(logger),
		queue:  make(chan domain.Event, size),
		done:   make(chan struct{}),
	}
	go q.run()
	return q
}

// Publish implements booking.EventPublisher. It never blocks.
func (q *QueuedPublisher) Publish(ctx context.Context, ev domain.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return ErrPublisherClosed
	}
	select {
	case q.queue <- ev:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops accepting events and waits until the queued ones are handed
// to the next publisher.
func (q *QueuedPublisher) Close() {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.queue)
	}
	q.mu.Unlock()
	<-q.done
}

func (q *QueuedPublisher) run() {
	defer close(q.done)
	for ev := range q.queue {
		// request contexts are gone by now; retries are bounded by the next publisher
		if err := q.next.Publish(context.Background(), ev); err != nil {
			q.logger.Error("event publish failed",
				logx.String("event_id", ev.ID),
				logx.String("event_type", string(ev.Type)),
				logx.String("booking_id", ev.BookingID),
				logx.Err(err),
			)
		}
	}
}
