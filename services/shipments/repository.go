package shipments

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/viajemos/viajemos/internal/pkg/models"
)

// ShipmentRepo defines shipment persistence and the PIN attempt counter
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/viajemos/viajemos/services/shipments ShipmentRepo
type ShipmentRepo interface {
	CreateShipment(ctx context.Context, shipment *models.Shipment) error
	GetShipment(ctx context.Context, id uuid.UUID) (*models.Shipment, error)
	ListShipmentsBySender(ctx context.Context, senderID uuid.UUID) ([]*models.Shipment, error)
	ListShipmentsByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.Shipment, error)
	ListShipmentsByStatus(ctx context.Context, status models.ShipmentStatus) ([]*models.Shipment, error)
	UpdateShipment(ctx context.Context, shipment *models.Shipment, from models.ShipmentStatus) error
	ReleaseTripShipments(ctx context.Context, tripID uuid.UUID, at time.Time) ([]*models.Shipment, error)

	GetPINAttempts(ctx context.Context, shipmentID uuid.UUID) (int, error)
	IncrPINAttempts(ctx context.Context, shipmentID uuid.UUID) (int, error)
	ResetPINAttempts(ctx context.Context, shipmentID uuid.UUID) error
}
