package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/viajemos/viajemos/internal/pkg/database"
	"github.com/viajemos/viajemos/internal/pkg/models"
	"github.com/viajemos/viajemos/services/trips"
)

const tripColumns = `id, driver_id, vehicle_id,
	origin_address, origin_latitude, origin_longitude,
	destination_address, destination_latitude, destination_longitude,
	origin_geohash, departure_at, seats_total, seats_available, price_per_seat,
	accepts_packages, max_package_weight_kg, max_package_volume_l, package_base_price,
	status, notes, created_at, updated_at`

// CreateTrip inserts a new trip
func (r *TripRepo) CreateTrip(ctx context.Context, trip *models.Trip) error {
	query := `
		INSERT INTO trips (` + tripColumns + `)
		VALUES (:id, :driver_id, :vehicle_id,
			:origin_address, :origin_latitude, :origin_longitude,
			:destination_address, :destination_latitude, :destination_longitude,
			:origin_geohash, :departure_at, :seats_total, :seats_available, :price_per_seat,
			:accepts_packages, :max_package_weight_kg, :max_package_volume_l, :package_base_price,
			:status, :notes, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, trip.ToDTO()); err != nil {
		return fmt.Errorf("failed to create trip: %w", err)
	}
	return nil
}

// GetTrip retrieves a trip by ID
func (r *TripRepo) GetTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error) {
	var dto models.TripDTO
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1`
	if err := r.db.GetContext(ctx, &dto, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, trips.ErrTripNotFound
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return dto.ToTrip(), nil
}

// ListTripsByDriver returns a driver's trips, soonest departure first
func (r *TripRepo) ListTripsByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.Trip, error) {
	var dtos []models.TripDTO
	query := `SELECT ` + tripColumns + ` FROM trips WHERE driver_id = $1 ORDER BY departure_at`
	if err := r.db.SelectContext(ctx, &dtos, query, driverID); err != nil {
		return nil, fmt.Errorf("failed to list driver trips: %w", err)
	}

	result := make([]*models.Trip, 0, len(dtos))
	for i := range dtos {
		result = append(result, dtos[i].ToTrip())
	}
	return result, nil
}

// ListTripsByStatus returns trips in any of statuses departing after the
// given instant, soonest first
func (r *TripRepo) ListTripsByStatus(ctx context.Context, statuses []models.TripStatus, departingAfter time.Time) ([]models.Trip, error) {
	raw := make([]string, len(statuses))
	for i, s := range statuses {
		raw[i] = string(s)
	}

	var dtos []models.TripDTO
	query := `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE status = ANY($1) AND departure_at > $2
		ORDER BY departure_at
	`
	if err := r.db.SelectContext(ctx, &dtos, query, pq.Array(raw), departingAfter); err != nil {
		return nil, fmt.Errorf("failed to list trips by status: %w", err)
	}

	result := make([]models.Trip, 0, len(dtos))
	for i := range dtos {
		result = append(result, *dtos[i].ToTrip())
	}
	return result, nil
}

// CancelTrip marks an active trip cancelled and cancels its active
// reservations in the same transaction. The cancelled reservations are
// returned so callers can notify passengers.
func (r *TripRepo) CancelTrip(ctx context.Context, tripID uuid.UUID, at time.Time) ([]*models.Reservation, error) {
	var cancelled []*models.Reservation
	err := database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx,
			`UPDATE trips SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`,
			models.TripStatusCancelled, at, tripID, models.TripStatusActive)
		if err != nil {
			return fmt.Errorf("failed to cancel trip: %w", err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get affected rows: %w", err)
		}
		if rows == 0 {
			return trips.ErrTripNotActive
		}

		query := `
			UPDATE reservations
			SET status = $1, updated_at = $2
			WHERE trip_id = $3 AND status = ANY($4)
			RETURNING ` + reservationColumns
		active := pq.Array([]string{
			string(models.ReservationStatusPending),
			string(models.ReservationStatusConfirmed),
		})
		if err := tx.SelectContext(ctx, &cancelled, query, models.ReservationStatusCancelled, at, tripID, active); err != nil {
			return fmt.Errorf("failed to cancel reservations: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cancelled, nil
}

// CompleteTrip marks an active trip completed
func (r *TripRepo) CompleteTrip(ctx context.Context, tripID uuid.UUID, at time.Time) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE trips SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`,
		models.TripStatusCompleted, at, tripID, models.TripStatusActive)
	if err != nil {
		return fmt.Errorf("failed to complete trip: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return trips.ErrTripNotActive
	}
	return nil
}
