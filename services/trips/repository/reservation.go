package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/viajemos/viajemos/internal/pkg/database"
	"github.com/viajemos/viajemos/internal/pkg/models"
	"github.com/viajemos/viajemos/services/trips"
)

const reservationColumns = `id, trip_id, passenger_id, seats, status, created_at, updated_at`

// CreateReservation takes the seats from the trip and inserts the
// reservation atomically. The seat update only succeeds on an active trip
// with enough seats left, so concurrent reservations cannot oversell.
func (r *TripRepo) CreateReservation(ctx context.Context, reservation *models.Reservation) error {
	return database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, `
			UPDATE trips
			SET seats_available = seats_available - $1, updated_at = $2
			WHERE id = $3 AND status = $4 AND seats_available >= $1
		`, reservation.Seats, reservation.CreatedAt, reservation.TripID, models.TripStatusActive)
		if err != nil {
			return fmt.Errorf("failed to take seats: %w", err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get affected rows: %w", err)
		}
		if rows == 0 {
			return trips.ErrNotEnoughSeats
		}

		// one active reservation per passenger and trip, enforced by a
		// partial unique index
		insert := `
			INSERT INTO reservations (` + reservationColumns + `)
			VALUES (:id, :trip_id, :passenger_id, :seats, :status, :created_at, :updated_at)
			ON CONFLICT (trip_id, passenger_id) WHERE status IN ('PENDIENTE', 'CONFIRMADA') DO NOTHING
		`
		result, err = tx.NamedExecContext(ctx, insert, reservation)
		if err != nil {
			return fmt.Errorf("failed to insert reservation: %w", err)
		}
		if rows, err = result.RowsAffected(); err != nil {
			return fmt.Errorf("failed to get affected rows: %w", err)
		}
		if rows == 0 {
			return trips.ErrDuplicateReservation
		}
		return nil
	})
}

// GetReservation retrieves a reservation by ID
func (r *TripRepo) GetReservation(ctx context.Context, id uuid.UUID) (*models.Reservation, error) {
	var reservation models.Reservation
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`
	if err := r.db.GetContext(ctx, &reservation, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, trips.ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}
	return &reservation, nil
}

// ListReservationsByTrip returns a trip's reservations, oldest first
func (r *TripRepo) ListReservationsByTrip(ctx context.Context, tripID uuid.UUID) ([]*models.Reservation, error) {
	var reservations []*models.Reservation
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE trip_id = $1 ORDER BY created_at`
	if err := r.db.SelectContext(ctx, &reservations, query, tripID); err != nil {
		return nil, fmt.Errorf("failed to list trip reservations: %w", err)
	}
	return reservations, nil
}

// ListReservationsByPassenger returns a passenger's reservations, newest first
func (r *TripRepo) ListReservationsByPassenger(ctx context.Context, passengerID uuid.UUID) ([]*models.Reservation, error) {
	var reservations []*models.Reservation
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE passenger_id = $1 ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &reservations, query, passengerID); err != nil {
		return nil, fmt.Errorf("failed to list passenger reservations: %w", err)
	}
	return reservations, nil
}

// UpdateReservationStatus moves reservation from the given status to
// reservation.Status. When restoreSeats is set the reserved seats go back to
// the trip in the same transaction. A reservation no longer in from yields
// trips.ErrInvalidTransition.
func (r *TripRepo) UpdateReservationStatus(ctx context.Context, reservation *models.Reservation, from models.ReservationStatus, restoreSeats bool) error {
	return database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx,
			`UPDATE reservations SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`,
			reservation.Status, reservation.UpdatedAt, reservation.ID, from)
		if err != nil {
			return fmt.Errorf("failed to update reservation: %w", err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get affected rows: %w", err)
		}
		if rows == 0 {
			return trips.ErrInvalidTransition
		}

		if !restoreSeats {
			return nil
		}
		_, err = tx.ExecContext(ctx,
			`UPDATE trips SET seats_available = seats_available + $1, updated_at = $2 WHERE id = $3`,
			reservation.Seats, reservation.UpdatedAt, reservation.TripID)
		if err != nil {
			return fmt.Errorf("failed to restore seats: %w", err)
		}
		return nil
	})
}
