package nats

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/nats-io/nats-server/v2/server"
	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/stretchr/testify/require"

	"github.com/viajemos/viajemos/internal/pkg/constants"
	"github.com/viajemos/viajemos/internal/pkg/models"
	natspkg "github.com/viajemos/viajemos/internal/pkg/nats"
	"github.com/viajemos/viajemos/services/shipments/mocks"
)

func runJetStream(t *testing.T) *server.Server {
	opts := natsserver.DefaultTestOptions
	opts.Port = -1
	opts.JetStream = true
	opts.StoreDir = t.TempDir()
	srv := natsserver.RunServer(&opts)
	t.Cleanup(srv.Shutdown)
	return srv
}

func newClient(t *testing.T, srv *server.Server, name string) *natspkg.Client {
	client, err := natspkg.NewClient(srv.ClientURL(), name)
	require.NoError(t, err)
	t.Cleanup(client.Close)
	return client
}

func startHandler(t *testing.T, client *natspkg.Client, mockUC *mocks.MockShipmentUC) {
	h := NewNatsHandler(mockUC, client)
	require.NoError(t, h.InitConsumers())
	t.Cleanup(h.Close)
}

func publishCancelled(t *testing.T, client *natspkg.Client, tripID string) {
	require.NoError(t, client.PublishPersistentJSON(context.Background(), constants.SubjectTripCancelled, models.TripEvent{
		TripID: tripID,
		Status: models.TripStatusCancelled,
	}))
}

func waitFor(t *testing.T, done <-chan struct{}, what string) {
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal(what)
	}
}

func TestTripCancelledReleasesShipments(t *testing.T) {
	srv := runJetStream(t)
	client := newClient(t, srv, "shipments-consumer-test")
	mockUC := mocks.NewMockShipmentUC(gomock.NewController(t))
	startHandler(t, client, mockUC)
	tripID := uuid.New()

	done := make(chan struct{})
	mockUC.EXPECT().ReleaseTripShipments(gomock.Any(), tripID).
		DoAndReturn(func(_ context.Context, _ uuid.UUID) (int, error) {
			close(done)
			return 2, nil
		})

	publishCancelled(t, client, tripID.String())

	waitFor(t, done, "trip cancellation not consumed")
}

func TestTripCancelledWhileConsumerDown(t *testing.T) {
	srv := runJetStream(t)
	publisher := newClient(t, srv, "trips-test")
	require.NoError(t, publisher.EnsureStream(context.Background(), natspkg.TripStream()))

	tripID := uuid.New()
	publishCancelled(t, publisher, tripID.String())

	mockUC := mocks.NewMockShipmentUC(gomock.NewController(t))
	done := make(chan struct{})
	mockUC.EXPECT().ReleaseTripShipments(gomock.Any(), tripID).
		DoAndReturn(func(_ context.Context, _ uuid.UUID) (int, error) {
			close(done)
			return 1, nil
		})

	startHandler(t, newClient(t, srv, "shipments-consumer-test"), mockUC)

	waitFor(t, done, "event published before the consumer started was not delivered")
}

func TestTripCancelledRedeliveredAfterFailure(t *testing.T) {
	srv := runJetStream(t)
	client := newClient(t, srv, "shipments-consumer-test")
	mockUC := mocks.NewMockShipmentUC(gomock.NewController(t))
	startHandler(t, client, mockUC)
	tripID := uuid.New()

	var calls int32
	done := make(chan struct{})
	mockUC.EXPECT().ReleaseTripShipments(gomock.Any(), tripID).
		DoAndReturn(func(_ context.Context, _ uuid.UUID) (int, error) {
			if atomic.AddInt32(&calls, 1) == 1 {
				return 0, errors.New("connection reset")
			}
			close(done)
			return 1, nil
		}).Times(2)

	publishCancelled(t, client, tripID.String())

	waitFor(t, done, "failed release was not retried")
}

func TestMalformedTripEventIsSkipped(t *testing.T) {
	srv := runJetStream(t)
	client := newClient(t, srv, "shipments-consumer-test")
	mockUC := mocks.NewMockShipmentUC(gomock.NewController(t))
	startHandler(t, client, mockUC)
	tripID := uuid.New()

	done := make(chan struct{})
	mockUC.EXPECT().ReleaseTripShipments(gomock.Any(), tripID).
		DoAndReturn(func(_ context.Context, _ uuid.UUID) (int, error) {
			close(done)
			return 0, nil
		})

	require.NoError(t, client.Publish(constants.SubjectTripCancelled, []byte("not-json")))
	publishCancelled(t, client, "not-a-uuid")
	publishCancelled(t, client, tripID.String())

	waitFor(t, done, "valid event after malformed ones not consumed")
}
