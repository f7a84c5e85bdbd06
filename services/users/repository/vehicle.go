package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/viajemos/viajemos/internal/pkg/models"
	"github.com/viajemos/viajemos/services/users"
)

const vehicleColumns = `id, owner_id, make, model, year, plate, color, seats,
	ownership_url, ownership_status, ownership_note,
	insurance_url, insurance_status, insurance_note,
	inspection_url, inspection_status, inspection_note,
	verification_status, created_at, updated_at`

// CreateVehicle inserts a vehicle. A duplicate plate yields users.ErrPlateTaken.
func (r *UserRepo) CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	query := `
		INSERT INTO vehicles (` + vehicleColumns + `)
		VALUES (:id, :owner_id, :make, :model, :year, :plate, :color, :seats,
			:ownership_url, :ownership_status, :ownership_note,
			:insurance_url, :insurance_status, :insurance_note,
			:inspection_url, :inspection_status, :inspection_note,
			:verification_status, :created_at, :updated_at)
		ON CONFLICT (plate) DO NOTHING
	`
	result, err := r.db.NamedExecContext(ctx, query, vehicle.ToDTO())
	if err != nil {
		return fmt.Errorf("failed to insert vehicle: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return users.ErrPlateTaken
	}
	return nil
}

// GetVehicle retrieves a vehicle by ID
func (r *UserRepo) GetVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	var dto models.VehicleDTO
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`
	if err := r.db.GetContext(ctx, &dto, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, users.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	return dto.ToVehicle(), nil
}

// ListVehiclesByOwner returns the owner's vehicles, oldest first
func (r *UserRepo) ListVehiclesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Vehicle, error) {
	var dtos []models.VehicleDTO
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE owner_id = $1 ORDER BY created_at`
	if err := r.db.SelectContext(ctx, &dtos, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}

	vehicles := make([]*models.Vehicle, 0, len(dtos))
	for i := range dtos {
		vehicles = append(vehicles, dtos[i].ToVehicle())
	}
	return vehicles, nil
}

// UpdateVehicleDocuments saves the three documents and the aggregated status,
// provided nobody wrote the vehicle since it was read at readUpdatedAt
func (r *UserRepo) UpdateVehicleDocuments(ctx context.Context, vehicle *models.Vehicle, readUpdatedAt time.Time) error {
	query := `
		UPDATE vehicles
		SET ownership_url = :ownership_url, ownership_status = :ownership_status, ownership_note = :ownership_note,
			insurance_url = :insurance_url, insurance_status = :insurance_status, insurance_note = :insurance_note,
			inspection_url = :inspection_url, inspection_status = :inspection_status, inspection_note = :inspection_note,
			verification_status = :verification_status, updated_at = :updated_at
		WHERE id = :id AND updated_at = :read_updated_at
	`
	args := struct {
		models.VehicleDTO
		ReadUpdatedAt time.Time `db:"read_updated_at"`
	}{*vehicle.ToDTO(), readUpdatedAt}

	result, err := r.db.NamedExecContext(ctx, query, args)
	if err != nil {
		return fmt.Errorf("failed to update vehicle documents: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return users.ErrVehicleChanged
	}
	return nil
}

// DeleteVehicle removes a vehicle owned by ownerID
func (r *UserRepo) DeleteVehicle(ctx context.Context, id, ownerID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return users.ErrVehicleNotFound
	}
	return nil
}
