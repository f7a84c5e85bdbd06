package gateway

import (
	"context"

	"github.com/viajemos/viajemos/internal/pkg/models"
)

// PublishNotification forwards a provider notification to the notifications topic
func (g *PaymentGW) PublishNotification(ctx context.Context, notification *models.PaymentNotification) error {
	return g.producer.Publish(g.topic, notification)
}
