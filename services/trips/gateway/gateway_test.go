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
	"github.com/viajemos/viajemos/internal/pkg/models"
	natspkg "github.com/viajemos/viajemos/internal/pkg/nats"
	"github.com/viajemos/viajemos/internal/pkg/retry"
	"github.com/viajemos/viajemos/internal/pkg/verification"
	"github.com/viajemos/viajemos/services/trips"
)

func newNATSClient(t *testing.T) *natspkg.Client {
	opts := natsserver.DefaultTestOptions
	opts.Port = -1
	opts.JetStream = true
	opts.StoreDir = t.TempDir()
	srv := natsserver.RunServer(&opts)
	t.Cleanup(srv.Shutdown)

	client, err := natspkg.NewClient(srv.ClientURL(), "trips-test")
	require.NoError(t, err)
	t.Cleanup(client.Close)
	return client
}

func newUsersGW(t *testing.T, handler http.HandlerFunc) *TripGW {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	noRetry := retry.DefaultConfig()
	noRetry.MaxRetries = 0
	client := httpclient.NewClient(httpclient.Config{
		Name:    "users-service",
		BaseURL: server.URL,
		APIKey:  "trips-key",
		Retry:   &noRetry,
	})
	return NewTripGWWithClient(nil, client)
}

func TestGetVehicleStatus(t *testing.T) {
	vehicleID, ownerID := uuid.New(), uuid.New()

	gw := newUsersGW(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/vehicles/"+vehicleID.String(), r.URL.Path)
		assert.Equal(t, "trips-key", r.Header.Get(httpclient.APIKeyHeader))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": models.VehicleStatus{
				VehicleID:          vehicleID.String(),
				OwnerID:            ownerID.String(),
				Seats:              4,
				VerificationStatus: verification.StatusApproved,
			},
		})
	})

	status, err := gw.GetVehicleStatus(context.Background(), vehicleID)

	require.NoError(t, err)
	assert.Equal(t, ownerID.String(), status.OwnerID)
	assert.Equal(t, 4, status.Seats)
	assert.Equal(t, verification.StatusApproved, status.VerificationStatus)
}

func TestGetVehicleStatus_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "not found", status: http.StatusNotFound, body: `{"success":false}`, wantErr: trips.ErrVehicleNotFound},
		{name: "empty data", status: http.StatusOK, body: `{"success":true}`, wantErr: trips.ErrVehicleNotFound},
		{name: "users service failing", status: http.StatusInternalServerError, body: `{}`, wantErr: trips.ErrUsersUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := newUsersGW(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := gw.GetVehicleStatus(context.Background(), uuid.New())

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetVehicleStatus_Unreachable(t *testing.T) {
	noRetry := retry.DefaultConfig()
	noRetry.MaxRetries = 0
	client := httpclient.NewClient(httpclient.Config{
		Name:    "users-service",
		BaseURL: "http://127.0.0.1:1",
		Timeout: time.Second,
		Retry:   &noRetry,
	})
	gw := NewTripGWWithClient(nil, client)

	_, err := gw.GetVehicleStatus(context.Background(), uuid.New())

	assert.ErrorIs(t, err, trips.ErrUsersUnavailable)
}

func TestPublishReservationCreated(t *testing.T) {
	natsClient := newNATSClient(t)
	gw := NewTripGWWithClient(natsClient, nil)

	received := make(chan models.ReservationEvent, 1)
	_, err := natsClient.Subscribe(constants.SubjectReservationCreated, "", func(data []byte) error {
		var event models.ReservationEvent
		if err := json.Unmarshal(data, &event); err != nil {
			return err
		}
		received <- event
		return nil
	})
	require.NoError(t, err)

	driverID := uuid.New()
	reservation := &models.Reservation{
		ID:          uuid.New(),
		TripID:      uuid.New(),
		PassengerID: uuid.New(),
		Seats:       2,
		Status:      models.ReservationStatusPending,
	}
	require.NoError(t, gw.PublishReservationCreated(context.Background(), reservation, driverID))

	select {
	case event := <-received:
		assert.Equal(t, reservation.ID.String(), event.ReservationID)
		assert.Equal(t, driverID.String(), event.DriverID)
		assert.Equal(t, reservation.PassengerID.String(), event.PassengerID)
		assert.Equal(t, 2, event.Seats)
		assert.Equal(t, models.ReservationStatusPending, event.Status)
	case <-time.After(2 * time.Second):
		t.Fatal("reservation event not delivered")
	}
}

func TestPublishTripCancelled(t *testing.T) {
	natsClient := newNATSClient(t)
	require.NoError(t, natsClient.EnsureStream(context.Background(), natspkg.TripStream()))
	gw := NewTripGWWithClient(natsClient, nil)

	received := make(chan models.TripEvent, 1)
	_, err := natsClient.Subscribe(constants.SubjectTripCancelled, "shipments", func(data []byte) error {
		var event models.TripEvent
		if err := json.Unmarshal(data, &event); err != nil {
			return err
		}
		received <- event
		return nil
	})
	require.NoError(t, err)

	trip := &models.Trip{ID: uuid.New(), DriverID: uuid.New(), Status: models.TripStatusCancelled}
	require.NoError(t, gw.PublishTripCancelled(context.Background(), trip))

	select {
	case event := <-received:
		assert.Equal(t, trip.ID.String(), event.TripID)
		assert.Equal(t, models.TripStatusCancelled, event.Status)
	case <-time.After(2 * time.Second):
		t.Fatal("trip event not delivered")
	}
}

func TestPublishTripCancelled_NoStream(t *testing.T) {
	gw := NewTripGWWithClient(newNATSClient(t), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	err := gw.PublishTripCancelled(ctx, &models.Trip{ID: uuid.New(), DriverID: uuid.New(), Status: models.TripStatusCancelled})

	assert.Error(t, err, "cancellations must not be fire-and-forget")
}
