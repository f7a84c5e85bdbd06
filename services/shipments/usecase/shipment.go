package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/viajemos/viajemos/internal/pkg/logger"
	"github.com/viajemos/viajemos/internal/pkg/matching"
	"github.com/viajemos/viajemos/internal/pkg/models"
	"github.com/viajemos/viajemos/internal/utils"
	"github.com/viajemos/viajemos/services/shipments"
)

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", shipments.ErrInvalidInput, fmt.Sprintf(format, args...))
}

func redacted(s *models.Shipment) *models.Shipment {
	r := s.Redacted()
	return &r
}

func validateShipmentRequest(req *models.ShipmentRequest) error {
	switch {
	case strings.TrimSpace(req.Pickup.Address) == "":
		return invalid("pickup is required")
	case strings.TrimSpace(req.Dropoff.Address) == "":
		return invalid("dropoff is required")
	case strings.TrimSpace(req.Package.Description) == "":
		return invalid("package description is required")
	case req.Package.WeightKg <= 0:
		return invalid("package weight must be positive")
	case req.Package.VolumeL < 0:
		return invalid("package volume cannot be negative")
	case req.Price < 0:
		return invalid("price cannot be negative")
	}
	return nil
}

// packageCriteria asks for trips able to carry the package
func packageCriteria(p models.Package) matching.Criteria {
	return matching.Criteria{
		Packages:        true,
		PackageWeightKg: p.WeightKg,
		PackageVolumeL:  p.VolumeL,
	}
}

// CreateShipment registers a package delivery request. The delivery PIN is
// only ever returned to the sender.
func (uc *ShipmentUC) CreateShipment(ctx context.Context, senderID uuid.UUID, req *models.ShipmentRequest) (*models.Shipment, error) {
	if req == nil {
		return nil, invalid("request is required")
	}
	if err := validateShipmentRequest(req); err != nil {
		return nil, err
	}

	now := uc.now()
	shipment := &models.Shipment{
		ID:       uuid.New(),
		SenderID: senderID,
		Pickup:   models.Place{Address: strings.TrimSpace(req.Pickup.Address), Location: req.Pickup.Location},
		Dropoff:  models.Place{Address: strings.TrimSpace(req.Dropoff.Address), Location: req.Dropoff.Location},
		Package: models.Package{
			Description: strings.TrimSpace(req.Package.Description),
			WeightKg:    req.Package.WeightKg,
			VolumeL:     req.Package.VolumeL,
			Fragile:     req.Package.Fragile,
		},
		Price:     req.Price,
		Status:    models.ShipmentStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if raw := strings.TrimSpace(req.TripID); raw != "" {
		tripID, err := uuid.Parse(raw)
		if err != nil {
			return nil, invalid("trip_id is not a valid id")
		}
		trip, err := uc.shipmentGW.GetTrip(ctx, tripID)
		if err != nil {
			return nil, err
		}
		if err := uc.checkTrip(trip, shipment); err != nil {
			return nil, err
		}
		shipment.TripID = &tripID
	}

	pin, err := utils.GenerateDigits(pinLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate delivery PIN: %w", err)
	}
	shipment.DeliveryPIN = pin

	if err := uc.shipmentRepo.CreateShipment(ctx, shipment); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Shipment created",
		logger.String("shipment_id", shipment.ID.String()),
		logger.String("sender_id", senderID.String()))
	return shipment, nil
}

// checkTrip verifies trip can still carry shipment
func (uc *ShipmentUC) checkTrip(trip *models.Trip, shipment *models.Shipment) error {
	if trip.Status != models.TripStatusActive || !trip.DepartureAt.After(uc.now()) {
		return shipments.ErrTripNotActive
	}
	if trip.DriverID == shipment.SenderID {
		return invalid("drivers cannot carry their own shipments")
	}
	if !matching.Matches(*trip, packageCriteria(shipment.Package), nil) {
		return shipments.ErrPackageNotAccepted
	}
	return nil
}

// GetShipment returns a shipment. Open shipments are visible to everyone;
// the others only to their sender and driver. Only the sender sees the PIN.
func (uc *ShipmentUC) GetShipment(ctx context.Context, userID, shipmentID uuid.UUID) (*models.Shipment, error) {
	shipment, err := uc.shipmentRepo.GetShipment(ctx, shipmentID)
	if err != nil {
		return nil, err
	}
	if shipment.SenderID == userID {
		return shipment, nil
	}
	if shipment.Status != models.ShipmentStatusPending && !assignedTo(shipment, userID) {
		return nil, shipments.ErrNotShipmentParty
	}
	return redacted(shipment), nil
}

// ListSenderShipments returns the sender's shipments
func (uc *ShipmentUC) ListSenderShipments(ctx context.Context, senderID uuid.UUID) ([]*models.Shipment, error) {
	return uc.shipmentRepo.ListShipmentsBySender(ctx, senderID)
}

// ListDriverShipments returns the shipments assigned to a driver
func (uc *ShipmentUC) ListDriverShipments(ctx context.Context, driverID uuid.UUID) ([]*models.Shipment, error) {
	list, err := uc.shipmentRepo.ListShipmentsByDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}
	return redactAll(list), nil
}

// ListOpenShipments returns the shipments still waiting for a driver
func (uc *ShipmentUC) ListOpenShipments(ctx context.Context) ([]*models.Shipment, error) {
	list, err := uc.shipmentRepo.ListShipmentsByStatus(ctx, models.ShipmentStatusPending)
	if err != nil {
		return nil, err
	}
	return redactAll(list), nil
}

func redactAll(list []*models.Shipment) []*models.Shipment {
	out := make([]*models.Shipment, 0, len(list))
	for _, s := range list {
		out = append(out, redacted(s))
	}
	return out
}

func assignedTo(s *models.Shipment, driverID uuid.UUID) bool {
	return s.DriverID != nil && *s.DriverID == driverID
}

// SuggestTrips looks for trips that could carry a pending shipment
func (uc *ShipmentUC) SuggestTrips(ctx context.Context, senderID, shipmentID uuid.UUID) ([]models.Trip, error) {
	shipment, err := uc.shipmentRepo.GetShipment(ctx, shipmentID)
	if err != nil {
		return nil, err
	}
	if shipment.SenderID != senderID {
		return nil, shipments.ErrNotShipmentSender
	}
	if shipment.Status != models.ShipmentStatusPending {
		return nil, shipments.ErrInvalidTransition
	}

	criteria := packageCriteria(shipment.Package)
	criteria.Origin = shipment.Pickup.Address
	criteria.Destination = shipment.Dropoff.Address
	criteria.MaxPackagePrice = shipment.Price

	found, err := uc.shipmentGW.SearchTrips(ctx, criteria)
	if err != nil {
		return nil, err
	}

	suggestions := make([]models.Trip, 0, len(found))
	for _, t := range found {
		if t.DriverID != senderID {
			suggestions = append(suggestions, t)
		}
	}
	return suggestions, nil
}
