package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viajemos/viajemos/internal/pkg/models"
	"github.com/viajemos/viajemos/services/payments"
	"github.com/viajemos/viajemos/services/payments/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(h *PaymentHandler) *gin.Engine {
	r := gin.New()
	r.POST("/create_preference", h.CreatePreference)
	r.POST("/webhook", h.Webhook)
	return r
}

func serve(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCreatePreference(t *testing.T) {
	body := `{"items":[{"title":"Asiento","quantity":1,"unit_price":9500}],"payer":{"email":"ana@example.com"}}`

	tests := []struct {
		name       string
		body       string
		mockSetup  func(m *mocks.MockPaymentUC)
		wantStatus int
	}{
		{
			name: "created",
			body: body,
			mockSetup: func(m *mocks.MockPaymentUC) {
				m.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ interface{}, req *models.PreferenceRequest) (*models.PreferenceResponse, error) {
						assert.Equal(t, "ana@example.com", req.Payer.Email)
						return &models.PreferenceResponse{ID: "pref-1", InitPoint: "https://checkout"}, nil
					})
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "invalid items",
			body: body,
			mockSetup: func(m *mocks.MockPaymentUC) {
				m.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).Return(nil, payments.ErrInvalidInput)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "provider rejected",
			body: body,
			mockSetup: func(m *mocks.MockPaymentUC) {
				m.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).Return(nil, payments.ErrProviderRejected)
			},
			wantStatus: http.StatusBadGateway,
		},
		{
			name: "provider down",
			body: body,
			mockSetup: func(m *mocks.MockPaymentUC) {
				m.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).Return(nil, payments.ErrProviderUnavailable)
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name: "unexpected",
			body: body,
			mockSetup: func(m *mocks.MockPaymentUC) {
				m.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "malformed body",
			body:       `{"items":"none"}`,
			mockSetup:  func(m *mocks.MockPaymentUC) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockUC := mocks.NewMockPaymentUC(ctrl)
			tt.mockSetup(mockUC)

			rec := serve(newRouter(NewPaymentHandler(mockUC)), http.MethodPost, "/create_preference", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCreatePreference_ResponseShape(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockPaymentUC(ctrl)
	mockUC.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).
		Return(&models.PreferenceResponse{ID: "pref-1", InitPoint: "https://checkout"}, nil)

	rec := serve(newRouter(NewPaymentHandler(mockUC)), http.MethodPost, "/create_preference", `{"items":[]}`)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, map[string]interface{}{"id": "pref-1", "init_point": "https://checkout"}, response)
}

func TestWebhook(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockPaymentUC(ctrl)

	mockUC.EXPECT().HandleNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, n *models.PaymentNotification) error {
			assert.Equal(t, "payment", n.Topic)
			assert.Equal(t, "987654", n.ResourceID)
			assert.Equal(t, "payment.created", n.Action)
			assert.Equal(t, []string{"payment"}, n.Query["type"])
			assert.Contains(t, n.Payload, "payment.created")
			return nil
		})

	rec := serve(newRouter(NewPaymentHandler(mockUC)), http.MethodPost,
		"/webhook?type=payment", `{"action":"payment.created","type":"payment","data":{"id":987654}}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWebhook_AlwaysAcknowledges(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockPaymentUC(ctrl)

	mockUC.EXPECT().HandleNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, n *models.PaymentNotification) error {
			assert.Equal(t, "merchant_order", n.Topic)
			assert.Equal(t, "55", n.ResourceID)
			assert.Equal(t, "not json", n.Payload)
			return errors.New("mongo unavailable")
		})

	rec := serve(newRouter(NewPaymentHandler(mockUC)), http.MethodPost,
		"/webhook?topic=merchant_order&id=55", "not json")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWebhook_RejectsOversizedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockPaymentUC(ctrl)

	body := `{"action":"payment.created","padding":"` + strings.Repeat("x", maxWebhookBody) + `"}`
	rec := serve(newRouter(NewPaymentHandler(mockUC)), http.MethodPost, "/webhook?type=payment", body)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
