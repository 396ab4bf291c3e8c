package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/IBM/sarama"

	"rjcouriers-service-booking/internal/logx"
	"rjcouriers-service-booking/internal/service/carrier"
)

// HandleFunc processes a single carrier.Update from Kafka
type HandleFunc func(context.Context, carrier.Update) error

var newConsumerGroup = sarama.NewConsumerGroup

// Consumer wraps a Sarama consumer group and dispatches status updates to a handler
type Consumer struct {
	group      sarama.ConsumerGroup
	topic      string
	handler    HandleFunc
	logger     logx.Logger
	retryDelay time.Duration
}

// NewConsumer creates a new Kafka consumer. It returns nil when Kafka is not configured.
func NewConsumer(logger logx.Logger, brokers []string, groupID, topic string, h HandleFunc) (*Consumer, error) {
	// messaging is optional
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" || strings.TrimSpace(groupID) == "" {
		return nil, nil
	}
	cfg := sarama.NewConfig()
	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	group, err := newConsumerGroup(brokers, groupID, cfg)
	if err != nil {
		return nil, err
	}
	return &Consumer{
		group:      group,
		topic:      topic,
		handler:    h,
		logger:     logx.OrNop(logger),
		retryDelay: time.Second,
	}, nil
}

// Run consumes until ctx is done.
func (c *Consumer) Run(ctx context.Context) error {
	if c == nil {
		return nil
	}
	h := &groupHandler{c: c}
	for {
		if err := c.group.Consume(ctx, []string{c.topic}, h); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			c.logger.Error("kafka consume error", logx.String("topic", c.topic), logx.Err(err))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.retryDelay):
			}
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// Close closes the consumer group.
func (c *Consumer) Close() error {
	if c == nil {
		return nil
	}
	return c.group.Close()
}

type groupHandler struct{ c *Consumer }

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *groupHandler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	logger := h.c.logger
	for msg := range claim.Messages() {
		var dto StatusUpdateDTO
		if err := json.Unmarshal(msg.Value, &dto); err != nil {
			logger.Warn("kafka bad json", logx.Int64("offset", msg.Offset), logx.Err(err))
			sess.MarkMessage(msg, "")
			continue
		}
		u := ToDomain(dto)
		if u.BookingID == "" {
			logger.Warn("kafka empty booking_id", logx.Int64("offset", msg.Offset))
			sess.MarkMessage(msg, "")
			continue
		}
		if err := h.c.handler(sess.Context(), u); err != nil {
			if IsPermanent(err) {
				logger.Warn("kafka handle failed, skipping message",
					logx.String("booking_id", u.BookingID),
					logx.String("status", u.Status),
					logx.Err(err),
				)
				sess.MarkMessage(msg, "")
				continue
			}
			logger.Error("kafka handle failed, retry",
				logx.String("booking_id", u.BookingID),
				logx.String("status", u.Status),
				logx.Err(err),
			)
			return err
		}
		sess.MarkMessage(msg, "")
	}
	return nil
}
