package shipments

import (
	"context"

	"github.com/google/uuid"
	"github.com/viajemos/viajemos/internal/pkg/matching"
	"github.com/viajemos/viajemos/internal/pkg/models"
)

// ShipmentGW defines the calls to the trips service and the event bus
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/viajemos/viajemos/services/shipments ShipmentGW
type ShipmentGW interface {
	GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error)
	SearchTrips(ctx context.Context, criteria matching.Criteria) ([]models.Trip, error)
	PublishShipmentUpdated(ctx context.Context, shipment *models.Shipment) error
}
