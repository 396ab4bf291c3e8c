package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/require"

	"rjcouriers-service-booking/internal/domain"
)

func sampleEvent() domain.Event {
	return domain.Event{
		ID:            "0b7c",
		Type:          domain.EventBookingCreated,
		BookingID:     "RJ004",
		Status:        domain.StatusPending,
		PaymentStatus: domain.PaymentUnpaid,
		Cost:          20,
		OccurredAt:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestPublisher_Publish_SendsEventJSON(t *testing.T) {
	t.Parallel()

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	mp := mocks.NewSyncProducer(t, cfg)
	mp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(raw []byte) error {
		var dto EventDTO
		if err := json.Unmarshal(raw, &dto); err != nil {
			return err
		}
		if dto.Type != "booking_created" || dto.ID != "0b7c" || dto.BookingID != "RJ004" {
			return errors.New("unexpected payload " + string(raw))
		}
		return nil
	})

	p := NewPublisherFromProducer(mp, "booking-events")
	require.NoError(t, p.Publish(context.Background(), sampleEvent()))
	require.NoError(t, p.Close())
}

func TestPublisher_Publish_ReturnsSendError(t *testing.T) {
	t.Parallel()

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	mp := mocks.NewSyncProducer(t, cfg)
	mp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewPublisherFromProducer(mp, "booking-events")
	err := p.Publish(context.Background(), sampleEvent())
	require.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, p.Close())
}

func TestPublisher_Publish_CanceledContext(t *testing.T) {
	t.Parallel()

	mp := mocks.NewSyncProducer(t, nil)
	p := NewPublisherFromProducer(mp, "booking-events")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, p.Publish(ctx, sampleEvent()), context.Canceled)
	require.NoError(t, p.Close())
}

func TestNewPublisher_RequiresBrokersAndTopic(t *testing.T) {
	t.Parallel()

	_, err := NewPublisher(nil, "booking-events")
	require.Error(t, err)

	_, err = NewPublisher([]string{"localhost:9092"}, "")
	require.Error(t, err)
}
