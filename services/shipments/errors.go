package shipments

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotDriver          = errors.New("only drivers can carry shipments")
	ErrShipmentNotFound   = errors.New("shipment not found")
	ErrNotShipmentSender  = errors.New("shipment belongs to another sender")
	ErrNotAssignedDriver  = errors.New("shipment is assigned to another driver")
	ErrNotShipmentParty   = errors.New("only the sender or the assigned driver can do this")
	ErrInvalidTransition  = errors.New("shipment cannot change to the requested status")
	ErrTripNotFound       = errors.New("trip not found")
	ErrNotTripDriver      = errors.New("trip belongs to another driver")
	ErrTripNotActive      = errors.New("trip is not active")
	ErrTripMismatch       = errors.New("shipment was requested for another trip")
	ErrPackageNotAccepted = errors.New("trip does not accept this package")
	ErrInvalidPIN         = errors.New("invalid delivery PIN")
	ErrPINLocked          = errors.New("too many wrong PIN attempts, try again later")
	ErrTripsUnavailable   = errors.New("trips service unavailable")
)
