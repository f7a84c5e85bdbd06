package repository

import (
	"context"
	"fmt"

	"github.com/viajemos/viajemos/internal/pkg/models"
)

// SaveNotification inserts the raw notification. Redeliveries are stored
// again under a new id.
func (r *PaymentRepo) SaveNotification(ctx context.Context, notification *models.PaymentNotification) error {
	if _, err := r.hooks.InsertOne(ctx, notification); err != nil {
		return fmt.Errorf("failed to store payment notification: %w", err)
	}
	return nil
}
