package models

import (
	"time"
)

// TripEvent is published when a trip is created or cancelled
type TripEvent struct {
	TripID    string     `json:"trip_id"`
	DriverID  string     `json:"driver_id"`
	Status    TripStatus `json:"status"`
	Timestamp time.Time  `json:"timestamp"`
}

// ReservationEvent is published whenever a reservation changes
type ReservationEvent struct {
	ReservationID string            `json:"reservation_id"`
	TripID        string            `json:"trip_id"`
	DriverID      string            `json:"driver_id"`
	PassengerID   string            `json:"passenger_id"`
	Seats         int               `json:"seats"`
	Status        ReservationStatus `json:"status"`
	Timestamp     time.Time         `json:"timestamp"`
}

// ShipmentEvent is published whenever a shipment changes state
type ShipmentEvent struct {
	ShipmentID string         `json:"shipment_id"`
	SenderID   string         `json:"sender_id"`
	DriverID   string         `json:"driver_id,omitempty"`
	TripID     string         `json:"trip_id,omitempty"`
	Status     ShipmentStatus `json:"status"`
	Timestamp  time.Time      `json:"timestamp"`
}
