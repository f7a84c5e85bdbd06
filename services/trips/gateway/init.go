package gateway

import (
	httpclient "github.com/viajemos/viajemos/internal/pkg/http"
	"github.com/viajemos/viajemos/internal/pkg/models"
	natspkg "github.com/viajemos/viajemos/internal/pkg/nats"
)

// TripGW implements trips.TripGW
type TripGW struct {
	natsClient  *natspkg.Client
	usersClient *httpclient.Client
}

// NewTripGW creates a gateway publishing on natsClient and calling the users
// service internal API with the trips API key
func NewTripGW(natsClient *natspkg.Client, cfg *models.Config) *TripGW {
	return &TripGW{
		natsClient: natsClient,
		usersClient: httpclient.NewClient(httpclient.Config{
			Name:    "users-service",
			BaseURL: cfg.Services.UsersServiceURL,
			APIKey:  cfg.APIKey.TripsService,
		}),
	}
}

// NewTripGWWithClient wires an existing users client
func NewTripGWWithClient(natsClient *natspkg.Client, usersClient *httpclient.Client) *TripGW {
	return &TripGW{natsClient: natsClient, usersClient: usersClient}
}
