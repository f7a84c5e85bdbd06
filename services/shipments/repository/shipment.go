package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/viajemos/viajemos/internal/pkg/models"
	"github.com/viajemos/viajemos/services/shipments"
)

const shipmentColumns = `id, sender_id, trip_id, driver_id,
	pickup_address, pickup_latitude, pickup_longitude,
	dropoff_address, dropoff_latitude, dropoff_longitude,
	package_description, package_weight_kg, package_volume_l, package_fragile,
	price, status, delivery_pin,
	accepted_at, picked_up_at, delivered_at, cancelled_at, created_at, updated_at`

// CreateShipment inserts a new shipment
func (r *ShipmentRepo) CreateShipment(ctx context.Context, shipment *models.Shipment) error {
	query := `
		INSERT INTO shipments (` + shipmentColumns + `)
		VALUES (:id, :sender_id, :trip_id, :driver_id,
			:pickup_address, :pickup_latitude, :pickup_longitude,
			:dropoff_address, :dropoff_latitude, :dropoff_longitude,
			:package_description, :package_weight_kg, :package_volume_l, :package_fragile,
			:price, :status, :delivery_pin,
			:accepted_at, :picked_up_at, :delivered_at, :cancelled_at, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, shipment.ToDTO()); err != nil {
		return fmt.Errorf("failed to create shipment: %w", err)
	}
	return nil
}

// GetShipment retrieves a shipment by ID
func (r *ShipmentRepo) GetShipment(ctx context.Context, id uuid.UUID) (*models.Shipment, error) {
	var dto models.ShipmentDTO
	query := `SELECT ` + shipmentColumns + ` FROM shipments WHERE id = $1`
	if err := r.db.GetContext(ctx, &dto, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shipments.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("failed to get shipment: %w", err)
	}
	return dto.ToShipment(), nil
}

func (r *ShipmentRepo) list(ctx context.Context, where string, arg interface{}) ([]*models.Shipment, error) {
	var dtos []models.ShipmentDTO
	query := `SELECT ` + shipmentColumns + ` FROM shipments WHERE ` + where + ` ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &dtos, query, arg); err != nil {
		return nil, fmt.Errorf("failed to list shipments: %w", err)
	}

	result := make([]*models.Shipment, 0, len(dtos))
	for i := range dtos {
		result = append(result, dtos[i].ToShipment())
	}
	return result, nil
}

// ListShipmentsBySender returns a sender's shipments, newest first
func (r *ShipmentRepo) ListShipmentsBySender(ctx context.Context, senderID uuid.UUID) ([]*models.Shipment, error) {
	return r.list(ctx, "sender_id = $1", senderID)
}

// ListShipmentsByDriver returns the shipments assigned to a driver, newest first
func (r *ShipmentRepo) ListShipmentsByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.Shipment, error) {
	return r.list(ctx, "driver_id = $1", driverID)
}

// ListShipmentsByStatus returns every shipment in status, newest first
func (r *ShipmentRepo) ListShipmentsByStatus(ctx context.Context, status models.ShipmentStatus) ([]*models.Shipment, error) {
	return r.list(ctx, "status = $1", status)
}

// UpdateShipment writes the assignment, status and timestamps of shipment,
// provided it is still in from. Otherwise shipments.ErrInvalidTransition is
// returned and nothing changes.
func (r *ShipmentRepo) UpdateShipment(ctx context.Context, shipment *models.Shipment, from models.ShipmentStatus) error {
	query := `
		UPDATE shipments
		SET trip_id = :trip_id, driver_id = :driver_id, status = :status,
			accepted_at = :accepted_at, picked_up_at = :picked_up_at,
			delivered_at = :delivered_at, cancelled_at = :cancelled_at, updated_at = :updated_at
		WHERE id = :id AND status = :from_status
	`
	args := struct {
		models.ShipmentDTO
		FromStatus models.ShipmentStatus `db:"from_status"`
	}{*shipment.ToDTO(), from}

	result, err := r.db.NamedExecContext(ctx, query, args)
	if err != nil {
		return fmt.Errorf("failed to update shipment: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return shipments.ErrInvalidTransition
	}
	return nil
}

// ReleaseTripShipments returns the accepted shipments of a cancelled trip to
// the open pool and reports which ones moved
func (r *ShipmentRepo) ReleaseTripShipments(ctx context.Context, tripID uuid.UUID, at time.Time) ([]*models.Shipment, error) {
	query := `
		UPDATE shipments
		SET status = $1, trip_id = NULL, driver_id = NULL, accepted_at = NULL, updated_at = $2
		WHERE trip_id = $3 AND status = $4
		RETURNING ` + shipmentColumns

	var dtos []models.ShipmentDTO
	if err := r.db.SelectContext(ctx, &dtos, query,
		models.ShipmentStatusPending, at, tripID, models.ShipmentStatusAccepted); err != nil {
		return nil, fmt.Errorf("failed to release trip shipments: %w", err)
	}

	result := make([]*models.Shipment, 0, len(dtos))
	for i := range dtos {
		result = append(result, dtos[i].ToShipment())
	}
	return result, nil
}
