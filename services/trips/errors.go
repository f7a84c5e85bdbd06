package trips

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrNotDriver            = errors.New("only drivers can publish trips")
	ErrTripNotFound         = errors.New("trip not found")
	ErrNotTripDriver        = errors.New("trip belongs to another driver")
	ErrTripNotActive        = errors.New("trip is not active")
	ErrVehicleNotFound      = errors.New("vehicle not found")
	ErrVehicleNotOwned      = errors.New("vehicle belongs to another user")
	ErrVehicleNotVerified   = errors.New("vehicle is not verified")
	ErrNotEnoughSeats       = errors.New("not enough seats available")
	ErrOwnTrip              = errors.New("drivers cannot reserve their own trip")
	ErrDuplicateReservation = errors.New("an active reservation for this trip already exists")
	ErrReservationNotFound  = errors.New("reservation not found")
	ErrNotReservationOwner  = errors.New("reservation belongs to another passenger")
	ErrInvalidTransition    = errors.New("reservation cannot change to the requested status")
	ErrUsersUnavailable     = errors.New("users service unavailable")
)
