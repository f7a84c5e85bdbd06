package nats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/viajemos/viajemos/internal/pkg/constants"
	"github.com/viajemos/viajemos/internal/pkg/logger"
)

// ErrUnprocessable marks a message that can never succeed, such as a payload
// that does not decode. Durable consumers terminate it instead of redelivering.
var ErrUnprocessable = errors.New("unprocessable message")

// StreamConfig describes a persisted stream
type StreamConfig struct {
	Name     string
	Subjects []string
	Storage  jetstream.StorageType
	MaxAge   time.Duration
}

// ConsumerConfig describes a durable, explicitly acknowledged consumer
type ConsumerConfig struct {
	StreamName    string
	ConsumerName  string
	FilterSubject string
	AckWait       time.Duration
	MaxDeliver    int
}

// TripStream persists trip lifecycle events for consumers that must not miss
// them while they are down
func TripStream() StreamConfig {
	return StreamConfig{
		Name:     constants.StreamTrips,
		Subjects: []string{constants.SubjectTripPublished, constants.SubjectTripCancelled},
		Storage:  jetstream.FileStorage,
		MaxAge:   7 * 24 * time.Hour,
	}
}

// TripCancelledShipmentsConsumer is the shipments service's durable view of
// trip.cancelled
func TripCancelledShipmentsConsumer() ConsumerConfig {
	return ConsumerConfig{
		StreamName:    constants.StreamTrips,
		ConsumerName:  constants.ConsumerTripCancelledShipments,
		FilterSubject: constants.SubjectTripCancelled,
		AckWait:       30 * time.Second,
		MaxDeliver:    10,
	}
}

// EnsureStream creates the stream or updates it to cfg. Safe to call from
// every service that publishes to or consumes from it.
func (c *Client) EnsureStream(ctx context.Context, cfg StreamConfig) error {
	_, err := c.js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:      cfg.Name,
		Subjects:  cfg.Subjects,
		Retention: jetstream.LimitsPolicy,
		Storage:   cfg.Storage,
		MaxAge:    cfg.MaxAge,
		Discard:   jetstream.DiscardOld,
	})
	if err != nil {
		return fmt.Errorf("failed to ensure stream %s: %w", cfg.Name, err)
	}
	return nil
}

// PublishPersistentJSON publishes message to a stream subject and waits for
// the server to acknowledge that it was stored
func (c *Client) PublishPersistentJSON(ctx context.Context, subject string, message interface{}) error {
	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	ack, err := c.js.Publish(ctx, subject, data)
	if err != nil {
		return fmt.Errorf("failed to publish to stream: %w", err)
	}

	logger.Debug("Published persistent message",
		logger.String("subject", subject),
		logger.String("stream", ack.Stream))
	return nil
}

// ConsumeDurable binds handler to a durable consumer. Messages are acked on
// success, terminated when the handler reports ErrUnprocessable and nak'd
// otherwise so the server redelivers them, up to cfg.MaxDeliver times.
// Unacked messages survive restarts of the consuming service.
func (c *Client) ConsumeDurable(ctx context.Context, cfg ConsumerConfig, handler MessageHandler) (jetstream.ConsumeContext, error) {
	consumer, err := c.js.CreateOrUpdateConsumer(ctx, cfg.StreamName, jetstream.ConsumerConfig{
		Durable:       cfg.ConsumerName,
		FilterSubject: cfg.FilterSubject,
		DeliverPolicy: jetstream.DeliverAllPolicy,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       cfg.AckWait,
		MaxDeliver:    cfg.MaxDeliver,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer %s: %w", cfg.ConsumerName, err)
	}

	consumeCtx, err := consumer.Consume(func(msg jetstream.Msg) {
		err := handler(msg.Data())
		switch {
		case err == nil:
			if ackErr := msg.Ack(); ackErr != nil {
				logger.Error("Failed to ACK message", logger.String("subject", msg.Subject()), logger.Err(ackErr))
			}
		case errors.Is(err, ErrUnprocessable):
			logger.Warn("Dropping unprocessable message",
				logger.String("subject", msg.Subject()),
				logger.String("consumer", cfg.ConsumerName),
				logger.Err(err))
			if termErr := msg.Term(); termErr != nil {
				logger.Error("Failed to terminate message", logger.Err(termErr))
			}
		default:
			logger.Error("Error processing message, requesting redelivery",
				logger.String("subject", msg.Subject()),
				logger.String("consumer", cfg.ConsumerName),
				logger.Err(err))
			if nakErr := msg.Nak(); nakErr != nil {
				logger.Error("Failed to NAK message", logger.Err(nakErr))
			}
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start consuming %s: %w", cfg.ConsumerName, err)
	}

	logger.Info("Consuming durable stream",
		logger.String("stream", cfg.StreamName),
		logger.String("consumer", cfg.ConsumerName),
		logger.String("filter_subject", cfg.FilterSubject))
	return consumeCtx, nil
}
