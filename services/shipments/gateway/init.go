package gateway

import (
	httpclient "github.com/viajemos/viajemos/internal/pkg/http"
	"github.com/viajemos/viajemos/internal/pkg/models"
	natspkg "github.com/viajemos/viajemos/internal/pkg/nats"
)

// ShipmentGW implements shipments.ShipmentGW
type ShipmentGW struct {
	natsClient  *natspkg.Client
	tripsClient *httpclient.Client
}

// NewShipmentGW creates a gateway publishing on natsClient and reading trips
// from the trips service
func NewShipmentGW(natsClient *natspkg.Client, cfg *models.Config) *ShipmentGW {
	return &ShipmentGW{
		natsClient: natsClient,
		tripsClient: httpclient.NewClient(httpclient.Config{
			Name:    "trips-service",
			BaseURL: cfg.Services.TripsServiceURL,
			APIKey:  cfg.APIKey.ShipmentsService,
		}),
	}
}

// NewShipmentGWWithClient wires an existing trips client
func NewShipmentGWWithClient(natsClient *natspkg.Client, tripsClient *httpclient.Client) *ShipmentGW {
	return &ShipmentGW{natsClient: natsClient, tripsClient: tripsClient}
}
