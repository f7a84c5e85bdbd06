package nats

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/viajemos/viajemos/internal/pkg/constants"
	"github.com/viajemos/viajemos/internal/pkg/logger"
	"github.com/viajemos/viajemos/internal/pkg/models"
	natspkg "github.com/viajemos/viajemos/internal/pkg/nats"
)

// Notifier pushes an event to every websocket connection of a user
type Notifier interface {
	NotifyUser(userID, event string, data interface{}) error
}

// NatsHandler forwards trip and reservation events to connected clients
type NatsHandler struct {
	natsClient *natspkg.Client
	notifier   Notifier
	subs       []*nats.Subscription
}

// NewNatsHandler creates a new NATS handler
func NewNatsHandler(natsClient *natspkg.Client, notifier Notifier) *NatsHandler {
	return &NatsHandler{
		natsClient: natsClient,
		notifier:   notifier,
		subs:       make([]*nats.Subscription, 0),
	}
}

// InitConsumers subscribes to the events pushed over the websocket feed.
// Every trips instance needs every event because clients are connected to
// one instance only, so no queue group is used.
func (h *NatsHandler) InitConsumers() error {
	handlers := map[string]natspkg.MessageHandler{
		constants.SubjectReservationCreated: h.reservationHandler(constants.EventReservationCreated),
		constants.SubjectReservationUpdated: h.reservationHandler(constants.EventReservationUpdated),
		constants.SubjectTripCancelled:      h.handleTripCancelled,
	}
	for subject, handler := range handlers {
		sub, err := h.natsClient.Subscribe(subject, "", handler)
		if err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", subject, err)
		}
		h.subs = append(h.subs, sub)
	}
	return nil
}

// Close unsubscribes every consumer
func (h *NatsHandler) Close() {
	for _, sub := range h.subs {
		if err := sub.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe", logger.String("subject", sub.Subject), logger.Err(err))
		}
	}
	h.subs = nil
}

func (h *NatsHandler) reservationHandler(event string) natspkg.MessageHandler {
	return func(msg []byte) error {
		var payload models.ReservationEvent
		if err := json.Unmarshal(msg, &payload); err != nil {
			return fmt.Errorf("failed to unmarshal reservation event: %w", err)
		}

		h.notify(payload.DriverID, event, payload)
		h.notify(payload.PassengerID, event, payload)
		return nil
	}
}

func (h *NatsHandler) handleTripCancelled(msg []byte) error {
	var payload models.TripEvent
	if err := json.Unmarshal(msg, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal trip event: %w", err)
	}

	h.notify(payload.DriverID, constants.EventTripCancelled, payload)
	return nil
}

func (h *NatsHandler) notify(userID, event string, data interface{}) {
	if userID == "" {
		return
	}
	if err := h.notifier.NotifyUser(userID, event, data); err != nil {
		logger.Debug("User not notified",
			logger.String("user_id", userID),
			logger.String("event", event),
			logger.Err(err))
	}
}
