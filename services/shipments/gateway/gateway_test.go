package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viajemos/viajemos/internal/pkg/constants"
	httpclient "github.com/viajemos/viajemos/internal/pkg/http"
	"github.com/viajemos/viajemos/internal/pkg/matching"
	"github.com/viajemos/viajemos/internal/pkg/models"
	natspkg "github.com/viajemos/viajemos/internal/pkg/nats"
	"github.com/viajemos/viajemos/internal/pkg/retry"
	"github.com/viajemos/viajemos/services/shipments"
)

func newTripsGW(t *testing.T, handler http.HandlerFunc) *ShipmentGW {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	noRetry := retry.DefaultConfig()
	noRetry.MaxRetries = 0
	client := httpclient.NewClient(httpclient.Config{
		Name:    "trips-service",
		BaseURL: server.URL,
		APIKey:  "shipments-key",
		Retry:   &noRetry,
	})
	return NewShipmentGWWithClient(nil, client)
}

func writeData(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": data})
}

func TestGetTrip(t *testing.T) {
	tripID := uuid.New()

	gw := newTripsGW(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/trips/"+tripID.String(), r.URL.Path)
		assert.Equal(t, "shipments-key", r.Header.Get(httpclient.APIKeyHeader))
		writeData(w, models.Trip{
			ID:       tripID,
			Status:   models.TripStatusActive,
			Packages: models.PackagePolicy{Accepts: true, MaxWeightKg: 5},
		})
	})

	trip, err := gw.GetTrip(context.Background(), tripID)

	require.NoError(t, err)
	assert.Equal(t, tripID, trip.ID)
	assert.True(t, trip.Packages.Accepts)
}

func TestGetTrip_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "not found", status: http.StatusNotFound, body: `{"success":false}`, wantErr: shipments.ErrTripNotFound},
		{name: "empty data", status: http.StatusOK, body: `{"success":true}`, wantErr: shipments.ErrTripNotFound},
		{name: "trips service failing", status: http.StatusBadGateway, body: `{}`, wantErr: shipments.ErrTripsUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := newTripsGW(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := gw.GetTrip(context.Background(), uuid.New())

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSearchTrips(t *testing.T) {
	found := []models.Trip{{ID: uuid.New()}, {ID: uuid.New()}}

	gw := newTripsGW(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/trips/search", r.URL.Path)
		criteria := matching.FromValues(r.URL.Query())
		assert.True(t, criteria.Packages)
		assert.Equal(t, "cordoba", criteria.Origin)
		assert.Equal(t, 3.0, criteria.PackageWeightKg)
		writeData(w, found)
	})

	got, err := gw.SearchTrips(context.Background(), matching.Criteria{Origin: "cordoba", Packages: true, PackageWeightKg: 3})

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSearchTrips_NoData(t *testing.T) {
	gw := newTripsGW(t, func(w http.ResponseWriter, r *http.Request) {
		writeData(w, nil)
	})

	got, err := gw.SearchTrips(context.Background(), matching.Criteria{})

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestPublishShipmentUpdated(t *testing.T) {
	opts := natsserver.DefaultTestOptions
	opts.Port = -1
	srv := natsserver.RunServer(&opts)
	t.Cleanup(srv.Shutdown)

	natsClient, err := natspkg.NewClient(srv.ClientURL(), "shipments-test")
	require.NoError(t, err)
	t.Cleanup(natsClient.Close)

	received := make(chan models.ShipmentEvent, 1)
	_, err = natsClient.Subscribe(constants.SubjectShipmentUpdated, "", func(data []byte) error {
		var event models.ShipmentEvent
		if err := json.Unmarshal(data, &event); err != nil {
			return err
		}
		received <- event
		return nil
	})
	require.NoError(t, err)

	tripID, driverID := uuid.New(), uuid.New()
	shipment := &models.Shipment{
		ID:       uuid.New(),
		SenderID: uuid.New(),
		TripID:   &tripID,
		DriverID: &driverID,
		Status:   models.ShipmentStatusAccepted,
	}
	gw := NewShipmentGWWithClient(natsClient, nil)
	require.NoError(t, gw.PublishShipmentUpdated(context.Background(), shipment))

	select {
	case event := <-received:
		assert.Equal(t, shipment.ID.String(), event.ShipmentID)
		assert.Equal(t, tripID.String(), event.TripID)
		assert.Equal(t, driverID.String(), event.DriverID)
		assert.Equal(t, models.ShipmentStatusAccepted, event.Status)
	case <-time.After(2 * time.Second):
		t.Fatal("shipment event not delivered")
	}
}
