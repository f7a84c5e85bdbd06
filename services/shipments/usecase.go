package shipments

import (
	"context"

	"github.com/google/uuid"
	"github.com/viajemos/viajemos/internal/pkg/models"
)

// ShipmentUC defines the shipments business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/viajemos/viajemos/services/shipments ShipmentUC
type ShipmentUC interface {
	CreateShipment(ctx context.Context, senderID uuid.UUID, req *models.ShipmentRequest) (*models.Shipment, error)
	GetShipment(ctx context.Context, userID, shipmentID uuid.UUID) (*models.Shipment, error)
	ListSenderShipments(ctx context.Context, senderID uuid.UUID) ([]*models.Shipment, error)
	ListDriverShipments(ctx context.Context, driverID uuid.UUID) ([]*models.Shipment, error)
	ListOpenShipments(ctx context.Context) ([]*models.Shipment, error)

	AcceptShipment(ctx context.Context, driverID uuid.UUID, role models.Role, shipmentID uuid.UUID, req *models.ShipmentAcceptRequest) (*models.Shipment, error)
	StartShipment(ctx context.Context, driverID, shipmentID uuid.UUID) (*models.Shipment, error)
	DeliverShipment(ctx context.Context, driverID, shipmentID uuid.UUID, pin string) (*models.Shipment, error)
	CancelShipment(ctx context.Context, userID, shipmentID uuid.UUID) (*models.Shipment, error)

	SuggestTrips(ctx context.Context, senderID, shipmentID uuid.UUID) ([]models.Trip, error)
	ReleaseTripShipments(ctx context.Context, tripID uuid.UUID) (int, error)
}
