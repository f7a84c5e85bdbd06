package usecase

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/viajemos/viajemos/internal/pkg/logger"
	"github.com/viajemos/viajemos/internal/pkg/models"
	"github.com/viajemos/viajemos/services/shipments"
)

// AcceptShipment assigns a pending shipment to one of the driver's trips.
// The trip must be active and able to carry the package.
func (uc *ShipmentUC) AcceptShipment(ctx context.Context, driverID uuid.UUID, role models.Role, shipmentID uuid.UUID, req *models.ShipmentAcceptRequest) (*models.Shipment, error) {
	if role != models.RoleDriver {
		return nil, shipments.ErrNotDriver
	}

	shipment, err := uc.shipmentRepo.GetShipment(ctx, shipmentID)
	if err != nil {
		return nil, err
	}
	if !shipment.Status.CanTransitionTo(models.ShipmentStatusAccepted) {
		return nil, shipments.ErrInvalidTransition
	}

	tripID, err := acceptTripID(shipment, req)
	if err != nil {
		return nil, err
	}
	trip, err := uc.shipmentGW.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.DriverID != driverID {
		return nil, shipments.ErrNotTripDriver
	}
	if err := uc.checkTrip(trip, shipment); err != nil {
		return nil, err
	}

	updated, err := uc.transition(ctx, shipment, models.ShipmentStatusAccepted, func(s *models.Shipment, now time.Time) {
		s.TripID = &tripID
		s.DriverID = &driverID
		s.AcceptedAt = &now
	})
	if err != nil {
		return nil, err
	}
	return redacted(updated), nil
}

// acceptTripID picks the trip to assign. A shipment requested for a given
// trip can only go on that trip.
func acceptTripID(shipment *models.Shipment, req *models.ShipmentAcceptRequest) (uuid.UUID, error) {
	raw := ""
	if req != nil {
		raw = strings.TrimSpace(req.TripID)
	}
	if raw == "" {
		if shipment.TripID == nil {
			return uuid.Nil, invalid("trip_id is required")
		}
		return *shipment.TripID, nil
	}

	tripID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, invalid("trip_id is not a valid id")
	}
	if shipment.TripID != nil && *shipment.TripID != tripID {
		return uuid.Nil, shipments.ErrTripMismatch
	}
	return tripID, nil
}

// StartShipment records the pickup by the assigned driver. The trip carrying
// it must still be active; a cancelled trip releases its shipments here too,
// in case the trip.cancelled event has not been processed yet.
func (uc *ShipmentUC) StartShipment(ctx context.Context, driverID, shipmentID uuid.UUID) (*models.Shipment, error) {
	shipment, err := uc.driverShipment(ctx, driverID, shipmentID)
	if err != nil {
		return nil, err
	}
	if !shipment.Status.CanTransitionTo(models.ShipmentStatusInProgress) {
		return nil, shipments.ErrInvalidTransition
	}
	if err := uc.checkCarryingTrip(ctx, shipment); err != nil {
		return nil, err
	}

	updated, err := uc.transition(ctx, shipment, models.ShipmentStatusInProgress, func(s *models.Shipment, now time.Time) {
		s.PickedUpAt = &now
	})
	if err != nil {
		return nil, err
	}
	return redacted(updated), nil
}

// DeliverShipment completes a shipment in progress when the driver presents
// the recipient's PIN. Wrong PINs are counted and lock delivery for
// Shipments.PINLockout once the limit is reached.
func (uc *ShipmentUC) DeliverShipment(ctx context.Context, driverID, shipmentID uuid.UUID, pin string) (*models.Shipment, error) {
	shipment, err := uc.driverShipment(ctx, driverID, shipmentID)
	if err != nil {
		return nil, err
	}
	if !shipment.Status.CanTransitionTo(models.ShipmentStatusDelivered) {
		return nil, shipments.ErrInvalidTransition
	}

	attempts, err := uc.shipmentRepo.GetPINAttempts(ctx, shipmentID)
	if err != nil {
		return nil, err
	}
	if attempts >= uc.maxPINAttempts {
		return nil, shipments.ErrPINLocked
	}

	if subtle.ConstantTimeCompare([]byte(strings.TrimSpace(pin)), []byte(shipment.DeliveryPIN)) != 1 {
		attempts, err = uc.shipmentRepo.IncrPINAttempts(ctx, shipmentID)
		if err != nil {
			return nil, err
		}
		logger.WarnCtx(ctx, "Wrong delivery PIN",
			logger.String("shipment_id", shipmentID.String()),
			logger.Int("attempts", attempts))
		if attempts >= uc.maxPINAttempts {
			return nil, shipments.ErrPINLocked
		}
		return nil, shipments.ErrInvalidPIN
	}

	updated, err := uc.transition(ctx, shipment, models.ShipmentStatusDelivered, func(s *models.Shipment, now time.Time) {
		s.DeliveredAt = &now
	})
	if err != nil {
		return nil, err
	}
	if err := uc.shipmentRepo.ResetPINAttempts(ctx, shipmentID); err != nil {
		logger.WarnCtx(ctx, "Failed to reset PIN attempts", logger.Err(err))
	}
	return redacted(updated), nil
}

// CancelShipment cancels a shipment that is not finished yet. Only the
// sender and the assigned driver may cancel.
func (uc *ShipmentUC) CancelShipment(ctx context.Context, userID, shipmentID uuid.UUID) (*models.Shipment, error) {
	shipment, err := uc.shipmentRepo.GetShipment(ctx, shipmentID)
	if err != nil {
		return nil, err
	}
	isSender := shipment.SenderID == userID
	if !isSender && !assignedTo(shipment, userID) {
		return nil, shipments.ErrNotShipmentParty
	}
	if !shipment.Status.CanTransitionTo(models.ShipmentStatusCancelled) {
		return nil, shipments.ErrInvalidTransition
	}

	updated, err := uc.transition(ctx, shipment, models.ShipmentStatusCancelled, func(s *models.Shipment, now time.Time) {
		s.CancelledAt = &now
	})
	if err != nil {
		return nil, err
	}
	if isSender {
		return updated, nil
	}
	return redacted(updated), nil
}

// ReleaseTripShipments puts the accepted shipments of a cancelled trip back
// in the open pool
func (uc *ShipmentUC) ReleaseTripShipments(ctx context.Context, tripID uuid.UUID) (int, error) {
	released, err := uc.shipmentRepo.ReleaseTripShipments(ctx, tripID, uc.now())
	if err != nil {
		return 0, err
	}
	for _, s := range released {
		uc.publish(ctx, s)
	}

	if len(released) > 0 {
		logger.InfoCtx(ctx, "Shipments released from cancelled trip",
			logger.String("trip_id", tripID.String()),
			logger.Int("count", len(released)))
	}
	return len(released), nil
}

func (uc *ShipmentUC) checkCarryingTrip(ctx context.Context, shipment *models.Shipment) error {
	if shipment.TripID == nil {
		return shipments.ErrTripNotActive
	}
	trip, err := uc.shipmentGW.GetTrip(ctx, *shipment.TripID)
	if err != nil {
		return err
	}
	switch trip.Status {
	case models.TripStatusActive:
		return nil
	case models.TripStatusCancelled:
		if _, err := uc.ReleaseTripShipments(ctx, trip.ID); err != nil {
			logger.WarnCtx(ctx, "Failed to release shipments of cancelled trip",
				logger.String("trip_id", trip.ID.String()),
				logger.Err(err))
		}
	}
	return shipments.ErrTripNotActive
}

func (uc *ShipmentUC) driverShipment(ctx context.Context, driverID, shipmentID uuid.UUID) (*models.Shipment, error) {
	shipment, err := uc.shipmentRepo.GetShipment(ctx, shipmentID)
	if err != nil {
		return nil, err
	}
	if !assignedTo(shipment, driverID) {
		return nil, shipments.ErrNotAssignedDriver
	}
	return shipment, nil
}

// transition applies mutate and moves shipment to status, guarded on its
// current status so concurrent changes lose cleanly
func (uc *ShipmentUC) transition(ctx context.Context, shipment *models.Shipment, to models.ShipmentStatus, mutate func(s *models.Shipment, now time.Time)) (*models.Shipment, error) {
	from := shipment.Status
	now := uc.now()

	next := *shipment
	mutate(&next, now)
	next.Status = to
	next.UpdatedAt = now

	if err := uc.shipmentRepo.UpdateShipment(ctx, &next, from); err != nil {
		return nil, err
	}
	uc.publish(ctx, &next)

	logger.InfoCtx(ctx, "Shipment updated",
		logger.String("shipment_id", next.ID.String()),
		logger.String("from", string(from)),
		logger.String("to", string(to)))
	return &next, nil
}

func (uc *ShipmentUC) publish(ctx context.Context, shipment *models.Shipment) {
	if err := uc.shipmentGW.PublishShipmentUpdated(ctx, shipment); err != nil {
		logger.WarnCtx(ctx, "Failed to publish shipment event",
			logger.String("shipment_id", shipment.ID.String()),
			logger.Err(err))
	}
}
