package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/viajemos/viajemos/internal/pkg/models"
	natspkg "github.com/viajemos/viajemos/internal/pkg/nats"
	"github.com/viajemos/viajemos/services/shipments"
)

// NatsHandler consumes the trip events shipments react to
type NatsHandler struct {
	shipmentUC shipments.ShipmentUC
	natsClient *natspkg.Client
	consumers  []jetstream.ConsumeContext
}

// NewNatsHandler creates a new NATS handler
func NewNatsHandler(shipmentUC shipments.ShipmentUC, natsClient *natspkg.Client) *NatsHandler {
	return &NatsHandler{
		shipmentUC: shipmentUC,
		natsClient: natsClient,
		consumers:  make([]jetstream.ConsumeContext, 0),
	}
}

// InitConsumers binds the durable trip.cancelled consumer. Instances share
// it, so each event is handled once, and events published while every
// instance was down are delivered on start.
func (h *NatsHandler) InitConsumers() error {
	ctx := context.Background()
	if err := h.natsClient.EnsureStream(ctx, natspkg.TripStream()); err != nil {
		return err
	}

	cfg := natspkg.TripCancelledShipmentsConsumer()
	consumer, err := h.natsClient.ConsumeDurable(ctx, cfg, h.handleTripCancelled)
	if err != nil {
		return fmt.Errorf("failed to consume %s: %w", cfg.FilterSubject, err)
	}
	h.consumers = append(h.consumers, consumer)
	return nil
}

// Close stops every consumer; unacked messages stay on the stream
func (h *NatsHandler) Close() {
	for _, consumer := range h.consumers {
		consumer.Stop()
	}
	h.consumers = nil
}

func (h *NatsHandler) handleTripCancelled(msg []byte) error {
	var event models.TripEvent
	if err := json.Unmarshal(msg, &event); err != nil {
		return fmt.Errorf("%w: trip event: %v", natspkg.ErrUnprocessable, err)
	}
	tripID, err := uuid.Parse(event.TripID)
	if err != nil {
		return fmt.Errorf("%w: trip id %q", natspkg.ErrUnprocessable, event.TripID)
	}

	if _, err := h.shipmentUC.ReleaseTripShipments(context.Background(), tripID); err != nil {
		return fmt.Errorf("failed to release shipments of trip %s: %w", tripID, err)
	}
	return nil
}
