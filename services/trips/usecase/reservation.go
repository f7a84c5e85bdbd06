package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/viajemos/viajemos/internal/pkg/logger"
	"github.com/viajemos/viajemos/internal/pkg/models"
	"github.com/viajemos/viajemos/services/trips"
)

// ReserveSeats books seats on someone else's active trip. The reservation
// starts pending until the driver decides.
func (uc *TripUC) ReserveSeats(ctx context.Context, passengerID, tripID uuid.UUID, req *models.ReservationRequest) (*models.Reservation, error) {
	if req == nil || req.Seats < 1 {
		return nil, invalid("at least one seat is required")
	}

	trip, err := uc.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.DriverID == passengerID {
		return nil, trips.ErrOwnTrip
	}
	now := uc.now()
	if trip.Status != models.TripStatusActive || !trip.DepartureAt.After(now) {
		return nil, trips.ErrTripNotActive
	}
	if req.Seats > trip.SeatsAvailable {
		return nil, trips.ErrNotEnoughSeats
	}

	reservation := &models.Reservation{
		ID:          uuid.New(),
		TripID:      tripID,
		PassengerID: passengerID,
		Seats:       req.Seats,
		Status:      models.ReservationStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.tripRepo.CreateReservation(ctx, reservation); err != nil {
		return nil, err
	}
	uc.invalidateSearch(ctx)

	if err := uc.tripGW.PublishReservationCreated(ctx, reservation, trip.DriverID); err != nil {
		logger.WarnCtx(ctx, "Failed to publish reservation event",
			logger.String("reservation_id", reservation.ID.String()),
			logger.Err(err))
	}

	logger.InfoCtx(ctx, "Seats reserved",
		logger.String("reservation_id", reservation.ID.String()),
		logger.String("trip_id", tripID.String()),
		logger.Int("seats", reservation.Seats))
	return reservation, nil
}

// ListTripReservations returns the reservations on one of the driver's trips
func (uc *TripUC) ListTripReservations(ctx context.Context, driverID, tripID uuid.UUID) ([]*models.Reservation, error) {
	if _, err := uc.driverTrip(ctx, driverID, tripID); err != nil {
		return nil, err
	}
	return uc.tripRepo.ListReservationsByTrip(ctx, tripID)
}

// ListPassengerReservations returns the passenger's reservations
func (uc *TripUC) ListPassengerReservations(ctx context.Context, passengerID uuid.UUID) ([]*models.Reservation, error) {
	return uc.tripRepo.ListReservationsByPassenger(ctx, passengerID)
}

// DecideReservation lets the driver confirm or reject a pending
// reservation. Rejection gives the seats back.
func (uc *TripUC) DecideReservation(ctx context.Context, driverID, reservationID uuid.UUID, status models.ReservationStatus) (*models.Reservation, error) {
	if status != models.ReservationStatusConfirmed && status != models.ReservationStatusRejected {
		return nil, invalid("status must be %s or %s", models.ReservationStatusConfirmed, models.ReservationStatusRejected)
	}

	reservation, err := uc.tripRepo.GetReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.driverTrip(ctx, driverID, reservation.TripID); err != nil {
		return nil, err
	}
	if reservation.Status != models.ReservationStatusPending {
		return nil, trips.ErrInvalidTransition
	}

	return uc.transition(ctx, reservation, status, driverID)
}

// CancelReservation lets the passenger withdraw a pending or confirmed
// reservation
func (uc *TripUC) CancelReservation(ctx context.Context, passengerID, reservationID uuid.UUID) (*models.Reservation, error) {
	reservation, err := uc.tripRepo.GetReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if reservation.PassengerID != passengerID {
		return nil, trips.ErrNotReservationOwner
	}
	if !reservation.Status.Active() {
		return nil, trips.ErrInvalidTransition
	}

	trip, err := uc.tripRepo.GetTrip(ctx, reservation.TripID)
	if err != nil {
		return nil, err
	}
	return uc.transition(ctx, reservation, models.ReservationStatusCancelled, trip.DriverID)
}

func (uc *TripUC) transition(ctx context.Context, reservation *models.Reservation, to models.ReservationStatus, driverID uuid.UUID) (*models.Reservation, error) {
	from := reservation.Status
	restoreSeats := !to.Active()

	reservation.Status = to
	reservation.UpdatedAt = uc.now()
	if err := uc.tripRepo.UpdateReservationStatus(ctx, reservation, from, restoreSeats); err != nil {
		reservation.Status = from
		return nil, err
	}
	if restoreSeats {
		uc.invalidateSearch(ctx)
	}

	if err := uc.tripGW.PublishReservationUpdated(ctx, reservation, driverID); err != nil {
		logger.WarnCtx(ctx, "Failed to publish reservation event",
			logger.String("reservation_id", reservation.ID.String()),
			logger.Err(err))
	}

	logger.InfoCtx(ctx, "Reservation updated",
		logger.String("reservation_id", reservation.ID.String()),
		logger.String("from", string(from)),
		logger.String("to", string(to)))
	return reservation, nil
}
