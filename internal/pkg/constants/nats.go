package constants

// NATS subjects
const (
	// Trips service
	SubjectTripPublished      = "trip.published"
	SubjectTripCancelled      = "trip.cancelled"
	SubjectReservationCreated = "reservation.created"
	SubjectReservationUpdated = "reservation.updated"

	// Shipments service
	SubjectShipmentUpdated = "shipment.updated"
)

// JetStream streams and durable consumers
const (
	StreamTrips                    = "TRIPS"
	ConsumerTripCancelledShipments = "trip_cancelled_shipments"
)

// NSQ topics
const (
	TopicPaymentNotifications = "payment_notifications"
)
