package trips

import (
	"context"

	"github.com/google/uuid"
	"github.com/viajemos/viajemos/internal/pkg/models"
)

// TripGW defines calls to the users service and event publishing
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/viajemos/viajemos/services/trips TripGW
type TripGW interface {
	GetVehicleStatus(ctx context.Context, vehicleID uuid.UUID) (*models.VehicleStatus, error)
	PublishTripPublished(ctx context.Context, trip *models.Trip) error
	PublishTripCancelled(ctx context.Context, trip *models.Trip) error
	PublishReservationCreated(ctx context.Context, reservation *models.Reservation, driverID uuid.UUID) error
	PublishReservationUpdated(ctx context.Context, reservation *models.Reservation, driverID uuid.UUID) error
}
