package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/viajemos/viajemos/internal/pkg/constants"
	"github.com/viajemos/viajemos/internal/pkg/database"
)

func pinAttemptsKey(shipmentID uuid.UUID) string {
	return fmt.Sprintf(constants.KeyShipmentPINAttempts, shipmentID)
}

// GetPINAttempts returns the wrong PIN attempts inside the current lockout
// window
func (r *ShipmentRepo) GetPINAttempts(ctx context.Context, shipmentID uuid.UUID) (int, error) {
	raw, err := r.redisClient.Get(ctx, pinAttemptsKey(shipmentID))
	if err != nil {
		if errors.Is(err, database.ErrCacheMiss) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read PIN attempts: %w", err)
	}
	attempts, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("failed to parse PIN attempts: %w", err)
	}
	return attempts, nil
}

// IncrPINAttempts records a wrong PIN. The window starts with the first
// wrong attempt and lasts Shipments.PINLockout.
func (r *ShipmentRepo) IncrPINAttempts(ctx context.Context, shipmentID uuid.UUID) (int, error) {
	count, err := r.redisClient.IncrWithTTL(ctx, pinAttemptsKey(shipmentID), r.cfg.Shipments.PINLockout)
	if err != nil {
		return 0, fmt.Errorf("failed to count PIN attempt: %w", err)
	}
	return int(count), nil
}

// ResetPINAttempts clears the counter after a successful delivery
func (r *ShipmentRepo) ResetPINAttempts(ctx context.Context, shipmentID uuid.UUID) error {
	if err := r.redisClient.Delete(ctx, pinAttemptsKey(shipmentID)); err != nil {
		return fmt.Errorf("failed to reset PIN attempts: %w", err)
	}
	return nil
}
