package models

import (
	"time"

	"github.com/google/uuid"
)

// ReservationStatus represents the state of a seat reservation
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "PENDIENTE"
	ReservationStatusConfirmed ReservationStatus = "CONFIRMADA"
	ReservationStatusRejected  ReservationStatus = "RECHAZADA"
	ReservationStatusCancelled ReservationStatus = "CANCELADA"
)

// Active reports whether the reservation still holds seats
func (s ReservationStatus) Active() bool {
	return s == ReservationStatusPending || s == ReservationStatusConfirmed
}

// Reservation is a passenger's request to occupy seats on a trip (reservas)
type Reservation struct {
	ID          uuid.UUID         `json:"id" db:"id"`
	TripID      uuid.UUID         `json:"trip_id" db:"trip_id"`
	PassengerID uuid.UUID         `json:"passenger_id" db:"passenger_id"`
	Seats       int               `json:"seats" db:"seats"`
	Status      ReservationStatus `json:"status" db:"status"`
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at" db:"updated_at"`
}

// ReservationRequest is the payload to reserve seats
type ReservationRequest struct {
	Seats int `json:"seats"`
}

// ReservationDecision is the driver's answer to a pending reservation
type ReservationDecision struct {
	Status ReservationStatus `json:"status"`
}
