package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpclient "github.com/viajemos/viajemos/internal/pkg/http"
	"github.com/viajemos/viajemos/internal/pkg/models"
	"github.com/viajemos/viajemos/internal/pkg/retry"
	"github.com/viajemos/viajemos/services/payments"
)

type published struct {
	topic   string
	message interface{}
}

type recordingPublisher struct {
	sent []published
	err  error
}

func (p *recordingPublisher) Publish(topic string, message interface{}) error {
	p.sent = append(p.sent, published{topic: topic, message: message})
	return p.err
}

func newProviderGW(t *testing.T, handler http.HandlerFunc) *PaymentGW {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	fastRetry := retry.DefaultConfig()
	fastRetry.MaxRetries = 1
	fastRetry.BaseDelay = time.Millisecond
	fastRetry.MaxDelay = time.Millisecond
	client := httpclient.NewClient(httpclient.Config{
		Name:        "payment-provider",
		BaseURL:     server.URL,
		BearerToken: "TEST-token",
		Retry:       &fastRetry,
	})
	return NewPaymentGWWithClient(client, &recordingPublisher{}, "payment_notifications")
}

func TestCreatePreference(t *testing.T) {
	gw := newProviderGW(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/checkout/preferences", r.URL.Path)
		assert.Equal(t, "Bearer TEST-token", r.Header.Get("Authorization"))

		var pref models.ProviderPreference
		require.NoError(t, json.NewDecoder(r.Body).Decode(&pref))
		assert.Equal(t, "reservation-1", pref.ExternalReference)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.ProviderPreferenceResponse{ID: "pref-1", InitPoint: "https://checkout/live"})
	})

	resp, err := gw.CreatePreference(context.Background(), &models.ProviderPreference{
		Items:             []models.PreferenceItem{{Title: "Asiento", Quantity: 1, UnitPrice: 100}},
		ExternalReference: "reservation-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "pref-1", resp.ID)
}

func TestCreatePreference_Errors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantErr   error
		wantCalls int
	}{
		{name: "rejected", status: http.StatusBadRequest, body: `{"message":"invalid items"}`, wantErr: payments.ErrProviderRejected, wantCalls: 1},
		{name: "provider failing is retried", status: http.StatusInternalServerError, body: `{}`, wantErr: payments.ErrProviderUnavailable, wantCalls: 2},
		{name: "missing id", status: http.StatusOK, body: `{}`, wantErr: payments.ErrProviderUnavailable, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			gw := newProviderGW(t, func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := gw.CreatePreference(context.Background(), &models.ProviderPreference{})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantCalls, calls)
		})
	}
}

func TestPublishNotification(t *testing.T) {
	pub := &recordingPublisher{}
	gw := NewPaymentGWWithClient(nil, pub, "payment_notifications")
	notification := &models.PaymentNotification{ID: "n-1", Topic: "payment"}

	require.NoError(t, gw.PublishNotification(context.Background(), notification))

	require.Len(t, pub.sent, 1)
	assert.Equal(t, "payment_notifications", pub.sent[0].topic)
	assert.Equal(t, notification, pub.sent[0].message)
}
