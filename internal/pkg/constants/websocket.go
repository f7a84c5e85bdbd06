package constants

// WebSocket event types
const (
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	EventReservationCreated = "reservation_created"
	EventReservationUpdated = "reservation_updated"
	EventTripCancelled      = "trip_cancelled"
)

// WebSocket error codes
const (
	ErrorInvalidFormat = "invalid_format"
)
