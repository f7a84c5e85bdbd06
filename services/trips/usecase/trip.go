package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/viajemos/viajemos/internal/pkg/logger"
	"github.com/viajemos/viajemos/internal/pkg/models"
	"github.com/viajemos/viajemos/internal/pkg/verification"
	"github.com/viajemos/viajemos/internal/utils"
	"github.com/viajemos/viajemos/services/trips"
)

const maxTripSeats = 8

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", trips.ErrInvalidInput, fmt.Sprintf(format, args...))
}

func validateTripRequest(req *models.TripRequest) error {
	switch {
	case strings.TrimSpace(req.Origin.Address) == "":
		return invalid("origin is required")
	case strings.TrimSpace(req.Destination.Address) == "":
		return invalid("destination is required")
	case req.Seats < 1 || req.Seats > maxTripSeats:
		return invalid("seats must be between 1 and %d", maxTripSeats)
	case req.PricePerSeat < 0:
		return invalid("price per seat cannot be negative")
	}
	p := req.Packages
	if p.MaxWeightKg < 0 || p.MaxVolumeL < 0 || p.BasePrice < 0 {
		return invalid("package limits cannot be negative")
	}
	return nil
}

// PublishTrip creates an active trip for a driver's vehicle
func (uc *TripUC) PublishTrip(ctx context.Context, driverID uuid.UUID, role models.Role, req *models.TripRequest) (*models.Trip, error) {
	if role != models.RoleDriver {
		return nil, trips.ErrNotDriver
	}
	if req == nil {
		return nil, invalid("request is required")
	}
	if err := validateTripRequest(req); err != nil {
		return nil, err
	}
	now := uc.now()
	if !req.DepartureAt.After(now) {
		return nil, invalid("departure must be in the future")
	}
	vehicleID, err := uuid.Parse(req.VehicleID)
	if err != nil {
		return nil, invalid("vehicle_id is not a valid id")
	}

	vehicle, err := uc.tripGW.GetVehicleStatus(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.OwnerID != driverID.String() {
		return nil, trips.ErrVehicleNotOwned
	}
	if vehicle.Seats > 0 && req.Seats > vehicle.Seats {
		return nil, invalid("vehicle has only %d seats", vehicle.Seats)
	}
	if uc.cfg.Search.RequireVerifiedVehicle && vehicle.VerificationStatus != verification.StatusApproved {
		return nil, trips.ErrVehicleNotVerified
	}

	packages := req.Packages
	if !packages.Accepts {
		packages = models.PackagePolicy{}
	}

	trip := &models.Trip{
		ID:             uuid.New(),
		DriverID:       driverID,
		VehicleID:      vehicleID,
		Origin:         models.Place{Address: strings.TrimSpace(req.Origin.Address), Location: req.Origin.Location},
		Destination:    models.Place{Address: strings.TrimSpace(req.Destination.Address), Location: req.Destination.Location},
		DepartureAt:    req.DepartureAt.UTC(),
		SeatsTotal:     req.Seats,
		SeatsAvailable: req.Seats,
		PricePerSeat:   req.PricePerSeat,
		Packages:       packages,
		Status:         models.TripStatusActive,
		Notes:          strings.TrimSpace(req.Notes),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if !trip.Origin.Location.IsZero() {
		trip.OriginGeohash = utils.EncodeLocation(trip.Origin.Location, uc.cfg.Search.GeohashPrecision)
	}

	if err := uc.tripRepo.CreateTrip(ctx, trip); err != nil {
		return nil, err
	}
	uc.invalidateSearch(ctx)

	if err := uc.tripGW.PublishTripPublished(ctx, trip); err != nil {
		logger.WarnCtx(ctx, "Failed to publish trip event",
			logger.String("trip_id", trip.ID.String()),
			logger.Err(err))
	}

	logger.InfoCtx(ctx, "Trip published",
		logger.String("trip_id", trip.ID.String()),
		logger.String("driver_id", driverID.String()),
		logger.Int("seats", trip.SeatsTotal))
	return trip, nil
}

// GetTrip returns a trip by ID
func (uc *TripUC) GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error) {
	return uc.tripRepo.GetTrip(ctx, tripID)
}

// ListDriverTrips returns every trip the driver published
func (uc *TripUC) ListDriverTrips(ctx context.Context, driverID uuid.UUID) ([]*models.Trip, error) {
	return uc.tripRepo.ListTripsByDriver(ctx, driverID)
}

func (uc *TripUC) driverTrip(ctx context.Context, driverID, tripID uuid.UUID) (*models.Trip, error) {
	trip, err := uc.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.DriverID != driverID {
		return nil, trips.ErrNotTripDriver
	}
	return trip, nil
}

// CancelTrip cancels an active trip and every active reservation on it
func (uc *TripUC) CancelTrip(ctx context.Context, driverID, tripID uuid.UUID) (*models.Trip, error) {
	trip, err := uc.driverTrip(ctx, driverID, tripID)
	if err != nil {
		return nil, err
	}
	if trip.Status != models.TripStatusActive {
		return nil, trips.ErrTripNotActive
	}

	now := uc.now()
	cancelled, err := uc.tripRepo.CancelTrip(ctx, tripID, now)
	if err != nil {
		return nil, err
	}
	trip.Status = models.TripStatusCancelled
	trip.UpdatedAt = now
	uc.invalidateSearch(ctx)

	if err := uc.tripGW.PublishTripCancelled(ctx, trip); err != nil {
		logger.WarnCtx(ctx, "Failed to publish trip cancelled event",
			logger.String("trip_id", tripID.String()),
			logger.Err(err))
	}
	for _, r := range cancelled {
		if err := uc.tripGW.PublishReservationUpdated(ctx, r, driverID); err != nil {
			logger.WarnCtx(ctx, "Failed to publish reservation event",
				logger.String("reservation_id", r.ID.String()),
				logger.Err(err))
		}
	}

	logger.InfoCtx(ctx, "Trip cancelled",
		logger.String("trip_id", tripID.String()),
		logger.Int("reservations_cancelled", len(cancelled)))
	return trip, nil
}

// CompleteTrip marks an active trip as done
func (uc *TripUC) CompleteTrip(ctx context.Context, driverID, tripID uuid.UUID) (*models.Trip, error) {
	trip, err := uc.driverTrip(ctx, driverID, tripID)
	if err != nil {
		return nil, err
	}
	if trip.Status != models.TripStatusActive {
		return nil, trips.ErrTripNotActive
	}

	now := uc.now()
	if err := uc.tripRepo.CompleteTrip(ctx, tripID, now); err != nil {
		return nil, err
	}
	trip.Status = models.TripStatusCompleted
	trip.UpdatedAt = now
	uc.invalidateSearch(ctx)
	return trip, nil
}

// invalidateSearch drops cached search candidates. A failure only delays
// freshness until the cache TTL expires.
func (uc *TripUC) invalidateSearch(ctx context.Context) {
	if err := uc.tripRepo.InvalidateActiveTrips(ctx); err != nil {
		logger.WarnCtx(ctx, "Failed to invalidate search cache", logger.Err(err))
	}
}
