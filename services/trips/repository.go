package trips

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/viajemos/viajemos/internal/pkg/models"
)

// TripRepo defines trip and reservation persistence
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/viajemos/viajemos/services/trips TripRepo
type TripRepo interface {
	CreateTrip(ctx context.Context, trip *models.Trip) error
	GetTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error)
	ListTripsByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.Trip, error)
	ListTripsByStatus(ctx context.Context, statuses []models.TripStatus, departingAfter time.Time) ([]models.Trip, error)
	CancelTrip(ctx context.Context, tripID uuid.UUID, at time.Time) ([]*models.Reservation, error)
	CompleteTrip(ctx context.Context, tripID uuid.UUID, at time.Time) error

	CreateReservation(ctx context.Context, reservation *models.Reservation) error
	GetReservation(ctx context.Context, id uuid.UUID) (*models.Reservation, error)
	ListReservationsByTrip(ctx context.Context, tripID uuid.UUID) ([]*models.Reservation, error)
	ListReservationsByPassenger(ctx context.Context, passengerID uuid.UUID) ([]*models.Reservation, error)
	UpdateReservationStatus(ctx context.Context, reservation *models.Reservation, from models.ReservationStatus, restoreSeats bool) error

	GetCachedActiveTrips(ctx context.Context) ([]models.Trip, bool, error)
	CacheActiveTrips(ctx context.Context, trips []models.Trip) error
	InvalidateActiveTrips(ctx context.Context) error
}
