package nats

import (
	"encoding/json"
	"fmt"

	"github.com/viajemos/viajemos/internal/pkg/logger"
)

// PublishJSON marshals message and publishes it on subject
func (c *Client) PublishJSON(subject string, message interface{}) error {
	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := c.Publish(subject, data); err != nil {
		return err
	}

	logger.Debug("Published message", logger.String("subject", subject))
	return nil
}
