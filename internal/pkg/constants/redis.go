package constants

// Redis key formats
const (
	// Trips service
	KeySearchActiveTrips = "search:trips:active" // cached candidate list for search

	// Shipments service
	KeyShipmentPINAttempts = "shipment:pin:attempts:%s" // Format: shipment:pin:attempts:{shipment_id}

	// Rate Limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{resource}:{ip}
)
