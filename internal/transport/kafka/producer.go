package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/IBM/sarama"

	"rjcouriers-service-booking/internal/domain"
)

// Publisher sends booking events to a Kafka topic.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewPublisher dials brokers and returns a synchronous publisher.
func NewPublisher(brokers []string, topic string) (*Publisher, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" {
		return nil, fmt.Errorf("kafka publisher: brokers and topic are required")
	}
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 0

	p, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("kafka publisher: %w", err)
	}
	return NewPublisherFromProducer(p, topic), nil
}

// NewPublisherFromProducer wraps an existing producer.
func NewPublisherFromProducer(p sarama.SyncProducer, topic string) *Publisher {
	return &Publisher{producer: p, topic: topic}
}

// Publish sends ev keyed by its booking id so events of one booking stay ordered.
func (p *Publisher) Publish(ctx context.Context, ev domain.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := json.Marshal(FromDomain(ev))
	if err != nil {
		return Permanent(fmt.Errorf("marshal event: %w", err))
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(ev.BookingID),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(ev.Type)},
		},
	}
	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("send event %s: %w", ev.ID, err)
	}
	return nil
}

// Close flushes and closes the producer.
func (p *Publisher) Close() error {
	return p.producer.Close()
}
