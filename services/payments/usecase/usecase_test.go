package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viajemos/viajemos/internal/pkg/models"
	"github.com/viajemos/viajemos/services/payments"
	"github.com/viajemos/viajemos/services/payments/mocks"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestUC(t *testing.T, sandbox bool) (*PaymentUC, *mocks.MockPaymentRepo, *mocks.MockPaymentGW) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockPaymentRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)

	cfg := &models.Config{Payments: models.PaymentsConfig{
		Sandbox:         sandbox,
		NotificationURL: "https://viajemos.test/webhook",
	}}
	uc := NewPaymentUC(mockRepo, mockGW, cfg)
	uc.now = func() time.Time { return fixedNow }
	return uc, mockRepo, mockGW
}

func validPreference() *models.PreferenceRequest {
	return &models.PreferenceRequest{
		Items:             []models.PreferenceItem{{Title: " Asiento Córdoba-Rosario ", Quantity: 2, UnitPrice: 9500}},
		Payer:             models.Payer{Name: "Ana", Email: "ana@example.com"},
		ExternalReference: "reservation-1",
	}
}

func TestCreatePreference(t *testing.T) {
	providerResp := &models.ProviderPreferenceResponse{
		ID:               "pref-1",
		InitPoint:        "https://checkout/live",
		SandboxInitPoint: "https://checkout/sandbox",
	}

	tests := []struct {
		name          string
		sandbox       bool
		wantInitPoint string
	}{
		{name: "production", wantInitPoint: "https://checkout/live"},
		{name: "sandbox", sandbox: true, wantInitPoint: "https://checkout/sandbox"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, mockGW := newTestUC(t, tt.sandbox)
			mockGW.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, pref *models.ProviderPreference) (*models.ProviderPreferenceResponse, error) {
					require.Len(t, pref.Items, 1)
					assert.Equal(t, "Asiento Córdoba-Rosario", pref.Items[0].Title)
					assert.Equal(t, "ARS", pref.Items[0].CurrencyID)
					assert.Equal(t, "https://viajemos.test/webhook", pref.NotificationURL)
					assert.Equal(t, "reservation-1", pref.ExternalReference)
					return providerResp, nil
				})

			resp, err := uc.CreatePreference(context.Background(), validPreference())

			require.NoError(t, err)
			assert.Equal(t, "pref-1", resp.ID)
			assert.Equal(t, tt.wantInitPoint, resp.InitPoint)
		})
	}
}

func TestCreatePreference_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *models.PreferenceRequest)
	}{
		{name: "no items", mutate: func(r *models.PreferenceRequest) { r.Items = nil }},
		{name: "blank title", mutate: func(r *models.PreferenceRequest) { r.Items[0].Title = " " }},
		{name: "zero quantity", mutate: func(r *models.PreferenceRequest) { r.Items[0].Quantity = 0 }},
		{name: "free item", mutate: func(r *models.PreferenceRequest) { r.Items[0].UnitPrice = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, _ := newTestUC(t, false)
			req := validPreference()
			tt.mutate(req)

			_, err := uc.CreatePreference(context.Background(), req)

			assert.ErrorIs(t, err, payments.ErrInvalidInput)
		})
	}
}

func TestCreatePreference_ProviderDown(t *testing.T) {
	uc, _, mockGW := newTestUC(t, false)
	mockGW.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).Return(nil, payments.ErrProviderUnavailable)

	_, err := uc.CreatePreference(context.Background(), validPreference())

	assert.ErrorIs(t, err, payments.ErrProviderUnavailable)
}

func TestHandleNotification(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t, false)
	notification := &models.PaymentNotification{Topic: "payment", ResourceID: "123", Payload: `{"type":"payment"}`}

	mockRepo.EXPECT().SaveNotification(gomock.Any(), notification).Return(nil)
	mockGW.EXPECT().PublishNotification(gomock.Any(), notification).Return(nil)

	require.NoError(t, uc.HandleNotification(context.Background(), notification))
	assert.NotEmpty(t, notification.ID)
	assert.Equal(t, fixedNow, notification.ReceivedAt)
}

func TestHandleNotification_PublishesEvenWhenStoreFails(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t, false)
	notification := &models.PaymentNotification{Topic: "payment"}
	storeErr := errors.New("mongo unavailable")

	mockRepo.EXPECT().SaveNotification(gomock.Any(), notification).Return(storeErr)
	mockGW.EXPECT().PublishNotification(gomock.Any(), notification).Return(nil)

	err := uc.HandleNotification(context.Background(), notification)

	assert.ErrorIs(t, err, storeErr)
}
