package gateway

import (
	"context"

	"github.com/google/uuid"
	"github.com/viajemos/viajemos/internal/pkg/constants"
	"github.com/viajemos/viajemos/internal/pkg/models"
)

func tripEvent(trip *models.Trip) models.TripEvent {
	return models.TripEvent{
		TripID:    trip.ID.String(),
		DriverID:  trip.DriverID.String(),
		Status:    trip.Status,
		Timestamp: trip.UpdatedAt,
	}
}

func reservationEvent(r *models.Reservation, driverID uuid.UUID) models.ReservationEvent {
	return models.ReservationEvent{
		ReservationID: r.ID.String(),
		TripID:        r.TripID.String(),
		DriverID:      driverID.String(),
		PassengerID:   r.PassengerID.String(),
		Seats:         r.Seats,
		Status:        r.Status,
		Timestamp:     r.UpdatedAt,
	}
}

// PublishTripPublished stores a trip.published event on the trips stream
func (g *TripGW) PublishTripPublished(ctx context.Context, trip *models.Trip) error {
	return g.natsClient.PublishPersistentJSON(ctx, constants.SubjectTripPublished, tripEvent(trip))
}

// PublishTripCancelled stores a trip.cancelled event on the trips stream
func (g *TripGW) PublishTripCancelled(ctx context.Context, trip *models.Trip) error {
	return g.natsClient.PublishPersistentJSON(ctx, constants.SubjectTripCancelled, tripEvent(trip))
}

// PublishReservationCreated publishes a reservation.created event
func (g *TripGW) PublishReservationCreated(ctx context.Context, reservation *models.Reservation, driverID uuid.UUID) error {
	return g.natsClient.PublishJSON(constants.SubjectReservationCreated, reservationEvent(reservation, driverID))
}

// PublishReservationUpdated publishes a reservation.updated event
func (g *TripGW) PublishReservationUpdated(ctx context.Context, reservation *models.Reservation, driverID uuid.UUID) error {
	return g.natsClient.PublishJSON(constants.SubjectReservationUpdated, reservationEvent(reservation, driverID))
}
