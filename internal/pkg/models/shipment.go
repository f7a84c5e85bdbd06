package models

import (
	"time"

	"github.com/google/uuid"
)

// ShipmentStatus represents a package delivery state
type ShipmentStatus string

const (
	ShipmentStatusPending    ShipmentStatus = "PENDIENTE"
	ShipmentStatusAccepted   ShipmentStatus = "ACEPTADO"
	ShipmentStatusInProgress ShipmentStatus = "EN_PROGRESO"
	ShipmentStatusDelivered  ShipmentStatus = "ENTREGADO"
	ShipmentStatusCancelled  ShipmentStatus = "CANCELADO"
)

// shipmentTransitions lists the statuses reachable from each status
var shipmentTransitions = map[ShipmentStatus][]ShipmentStatus{
	ShipmentStatusPending:    {ShipmentStatusAccepted, ShipmentStatusCancelled},
	ShipmentStatusAccepted:   {ShipmentStatusInProgress, ShipmentStatusPending, ShipmentStatusCancelled},
	ShipmentStatusInProgress: {ShipmentStatusDelivered, ShipmentStatusCancelled},
}

// CanTransitionTo reports whether a shipment may move from s to next
func (s ShipmentStatus) CanTransitionTo(next ShipmentStatus) bool {
	for _, allowed := range shipmentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition is allowed
func (s ShipmentStatus) Terminal() bool {
	return s == ShipmentStatusDelivered || s == ShipmentStatusCancelled
}

// Package describes the parcel being sent
type Package struct {
	Description string  `json:"description"`
	WeightKg    float64 `json:"weight_kg"`
	VolumeL     float64 `json:"volume_l"`
	Fragile     bool    `json:"fragile"`
}

// Shipment is a package delivery request (envios)
type Shipment struct {
	ID          uuid.UUID      `json:"id"`
	SenderID    uuid.UUID      `json:"sender_id"`
	TripID      *uuid.UUID     `json:"trip_id,omitempty"`
	DriverID    *uuid.UUID     `json:"driver_id,omitempty"`
	Pickup      Place          `json:"pickup"`
	Dropoff     Place          `json:"dropoff"`
	Package     Package        `json:"package"`
	Price       float64        `json:"price"`
	Status      ShipmentStatus `json:"status"`
	DeliveryPIN string         `json:"delivery_pin,omitempty"`
	AcceptedAt  *time.Time     `json:"accepted_at,omitempty"`
	PickedUpAt  *time.Time     `json:"picked_up_at,omitempty"`
	DeliveredAt *time.Time     `json:"delivered_at,omitempty"`
	CancelledAt *time.Time     `json:"cancelled_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Redacted returns a copy without the delivery PIN
func (s Shipment) Redacted() Shipment {
	s.DeliveryPIN = ""
	return s
}

// ShipmentRequest is the payload to create a shipment
type ShipmentRequest struct {
	TripID  string  `json:"trip_id"`
	Pickup  Place   `json:"pickup"`
	Dropoff Place   `json:"dropoff"`
	Package Package `json:"package"`
	Price   float64 `json:"price"`
}

// ShipmentAcceptRequest is the driver's acceptance payload
type ShipmentAcceptRequest struct {
	TripID string `json:"trip_id"`
}

// DeliveryConfirmation carries the PIN the recipient hands to the driver
type DeliveryConfirmation struct {
	PIN string `json:"pin"`
}

// ShipmentDTO flattens the nested structs for database operations
type ShipmentDTO struct {
	ID                 uuid.UUID      `db:"id"`
	SenderID           uuid.UUID      `db:"sender_id"`
	TripID             uuid.NullUUID  `db:"trip_id"`
	DriverID           uuid.NullUUID  `db:"driver_id"`
	PickupAddress      string         `db:"pickup_address"`
	PickupLatitude     float64        `db:"pickup_latitude"`
	PickupLongitude    float64        `db:"pickup_longitude"`
	DropoffAddress     string         `db:"dropoff_address"`
	DropoffLatitude    float64        `db:"dropoff_latitude"`
	DropoffLongitude   float64        `db:"dropoff_longitude"`
	PackageDescription string         `db:"package_description"`
	PackageWeightKg    float64        `db:"package_weight_kg"`
	PackageVolumeL     float64        `db:"package_volume_l"`
	PackageFragile     bool           `db:"package_fragile"`
	Price              float64        `db:"price"`
	Status             ShipmentStatus `db:"status"`
	DeliveryPIN        string         `db:"delivery_pin"`
	AcceptedAt         *time.Time     `db:"accepted_at"`
	PickedUpAt         *time.Time     `db:"picked_up_at"`
	DeliveredAt        *time.Time     `db:"delivered_at"`
	CancelledAt        *time.Time     `db:"cancelled_at"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
}

// ToDTO converts a Shipment to a ShipmentDTO
func (s *Shipment) ToDTO() *ShipmentDTO {
	dto := &ShipmentDTO{
		ID:                 s.ID,
		SenderID:           s.SenderID,
		PickupAddress:      s.Pickup.Address,
		PickupLatitude:     s.Pickup.Location.Latitude,
		PickupLongitude:    s.Pickup.Location.Longitude,
		DropoffAddress:     s.Dropoff.Address,
		DropoffLatitude:    s.Dropoff.Location.Latitude,
		DropoffLongitude:   s.Dropoff.Location.Longitude,
		PackageDescription: s.Package.Description,
		PackageWeightKg:    s.Package.WeightKg,
		PackageVolumeL:     s.Package.VolumeL,
		PackageFragile:     s.Package.Fragile,
		Price:              s.Price,
		Status:             s.Status,
		DeliveryPIN:        s.DeliveryPIN,
		AcceptedAt:         s.AcceptedAt,
		PickedUpAt:         s.PickedUpAt,
		DeliveredAt:        s.DeliveredAt,
		CancelledAt:        s.CancelledAt,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
	if s.TripID != nil {
		dto.TripID = uuid.NullUUID{UUID: *s.TripID, Valid: true}
	}
	if s.DriverID != nil {
		dto.DriverID = uuid.NullUUID{UUID: *s.DriverID, Valid: true}
	}
	return dto
}

// ToShipment converts a ShipmentDTO to a Shipment
func (d *ShipmentDTO) ToShipment() *Shipment {
	s := &Shipment{
		ID:       d.ID,
		SenderID: d.SenderID,
		Pickup: Place{
			Address:  d.PickupAddress,
			Location: Location{Latitude: d.PickupLatitude, Longitude: d.PickupLongitude},
		},
		Dropoff: Place{
			Address:  d.DropoffAddress,
			Location: Location{Latitude: d.DropoffLatitude, Longitude: d.DropoffLongitude},
		},
		Package: Package{
			Description: d.PackageDescription,
			WeightKg:    d.PackageWeightKg,
			VolumeL:     d.PackageVolumeL,
			Fragile:     d.PackageFragile,
		},
		Price:       d.Price,
		Status:      d.Status,
		DeliveryPIN: d.DeliveryPIN,
		AcceptedAt:  d.AcceptedAt,
		PickedUpAt:  d.PickedUpAt,
		DeliveredAt: d.DeliveredAt,
		CancelledAt: d.CancelledAt,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
	if d.TripID.Valid {
		id := d.TripID.UUID
		s.TripID = &id
	}
	if d.DriverID.Valid {
		id := d.DriverID.UUID
		s.DriverID = &id
	}
	return s
}
