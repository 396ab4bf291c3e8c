package kafka

import (
	"context"
	"errors"
	"time"

	"rjcouriers-service-booking/internal/domain"
	"rjcouriers-service-booking/internal/logx"
)

type publisher interface {
	Publish(context.Context, domain.Event) error
}

type counter interface {
	Inc()
}

// RetryConfig describes RetryingPublisher behaviour
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RetryingPublisher retries transient publish failures with exponential backoff.
type RetryingPublisher struct {
	next    publisher
	logger  logx.Logger
	retries counter
	cfg     RetryConfig
	sleep   func(context.Context, time.Duration) bool
}

// NewRetryingPublisher returns nil when next is nil.
func NewRetryingPublisher(next publisher, logger logx.Logger, retries counter, cfg RetryConfig) *RetryingPublisher {
	if next == nil {
		return nil
	}
	logger = logx.OrNop(logger)
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &RetryingPublisher{next: next, logger: logger, retries: retries, cfg: cfg, sleep: sleepWithContext}
}

// Publish implements booking.EventPublisher
func (p *RetryingPublisher) Publish(ctx context.Context, ev domain.Event) error {
	var lastErr error
	for attempt := 1; attempt <= p.cfg.MaxAttempts; attempt++ {
		err := p.next.Publish(ctx, ev)
		if err == nil {
			return nil
		}
		lastErr = err

		if ctx.Err() != nil || attempt == p.cfg.MaxAttempts || !isRetryable(err) {
			break
		}

		delay := backoff(p.cfg.BaseDelay, p.cfg.MaxDelay, attempt)
		if p.retries != nil {
			p.retries.Inc()
		}
		p.logger.Warn("event publish retry",
			logx.String("event_id", ev.ID),
			logx.String("booking_id", ev.BookingID),
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Err(err),
		)
		if !p.sleep(ctx, delay) {
			break
		}
	}
	return lastErr
}

func isRetryable(err error) bool {
	if IsPermanent(err) {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func backoff(base, max time.Duration, attempt int) time.Duration {
	d := base << (attempt - 1)
	if d > max || d <= 0 {
		return max
	}
	return d
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
