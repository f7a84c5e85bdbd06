package trips

import (
	"context"

	"github.com/google/uuid"
	"github.com/viajemos/viajemos/internal/pkg/matching"
	"github.com/viajemos/viajemos/internal/pkg/models"
)

// TripUC defines the trips business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/viajemos/viajemos/services/trips TripUC
type TripUC interface {
	PublishTrip(ctx context.Context, driverID uuid.UUID, role models.Role, req *models.TripRequest) (*models.Trip, error)
	GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error)
	ListDriverTrips(ctx context.Context, driverID uuid.UUID) ([]*models.Trip, error)
	CancelTrip(ctx context.Context, driverID, tripID uuid.UUID) (*models.Trip, error)
	CompleteTrip(ctx context.Context, driverID, tripID uuid.UUID) (*models.Trip, error)
	SearchTrips(ctx context.Context, criteria matching.Criteria) ([]models.Trip, error)

	ReserveSeats(ctx context.Context, passengerID, tripID uuid.UUID, req *models.ReservationRequest) (*models.Reservation, error)
	ListTripReservations(ctx context.Context, driverID, tripID uuid.UUID) ([]*models.Reservation, error)
	ListPassengerReservations(ctx context.Context, passengerID uuid.UUID) ([]*models.Reservation, error)
	DecideReservation(ctx context.Context, driverID, reservationID uuid.UUID, status models.ReservationStatus) (*models.Reservation, error)
	CancelReservation(ctx context.Context, passengerID, reservationID uuid.UUID) (*models.Reservation, error)
}
