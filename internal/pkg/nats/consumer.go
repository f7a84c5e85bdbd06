package nats

import (
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/viajemos/viajemos/internal/pkg/logger"
)

// MessageHandler processes one message payload
type MessageHandler func(message []byte) error

// Subscribe delivers messages on subject to handler. With a non-empty
// queueGroup each message goes to one member of the group only. Handler
// errors are logged; core NATS has no redelivery.
func (c *Client) Subscribe(subject, queueGroup string, handler MessageHandler) (*nats.Subscription, error) {
	cb := func(msg *nats.Msg) {
		if err := handler(msg.Data); err != nil {
			logger.Error("Error processing message",
				logger.String("subject", msg.Subject),
				logger.String("queue_group", queueGroup),
				logger.Err(err))
		}
	}

	var (
		sub *nats.Subscription
		err error
	)
	if queueGroup != "" {
		sub, err = c.conn.QueueSubscribe(subject, queueGroup, cb)
	} else {
		sub, err = c.conn.Subscribe(subject, cb)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to %s: %w", subject, err)
	}

	logger.Info("Subscribed to subject",
		logger.String("subject", subject),
		logger.String("queue_group", queueGroup))
	return sub, nil
}
