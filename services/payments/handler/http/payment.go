package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/viajemos/viajemos/internal/pkg/logger"
	"github.com/viajemos/viajemos/internal/pkg/models"
	"github.com/viajemos/viajemos/internal/utils"
	"github.com/viajemos/viajemos/services/payments"
)

// PaymentHandler relays checkout requests and provider notifications
type PaymentHandler struct {
	paymentUC payments.PaymentUC
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUC payments.PaymentUC) *PaymentHandler {
	return &PaymentHandler{paymentUC: paymentUC}
}

func abort(c *gin.Context, status int, msg string) {
	c.JSON(status, utils.ErrorResponse{Success: false, Error: msg, Code: status})
}

// CreatePreference creates a checkout preference at the provider
func (h *PaymentHandler) CreatePreference(c *gin.Context) {
	var req models.PreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	pref, err := h.paymentUC.CreatePreference(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrInvalidInput):
			abort(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, payments.ErrProviderRejected):
			abort(c, http.StatusBadGateway, "Payment provider rejected the request")
		case errors.Is(err, payments.ErrProviderUnavailable):
			abort(c, http.StatusServiceUnavailable, "Payment provider unavailable")
		default:
			logger.ErrorCtx(c.Request.Context(), "Failed to create preference", logger.Err(err))
			abort(c, http.StatusInternalServerError, "Failed to create preference")
		}
		return
	}

	c.JSON(http.StatusOK, pref)
}

// webhookBody is the subset of the provider notification body that is indexed
type webhookBody struct {
	Action string `json:"action"`
	Type   string `json:"type"`
	Data   struct {
		ID json.RawMessage `json:"id"`
	} `json:"data"`
}

// maxWebhookBody bounds what a notification body may weigh
const maxWebhookBody = 1 << 20

// Webhook stores and forwards a provider notification. The provider always
// gets a 200 so it stops redelivering; only bodies over maxWebhookBody are
// refused, unread past the limit.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	raw, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			logger.WarnCtx(c.Request.Context(), "Webhook body too large", logger.Int("limit", maxWebhookBody))
			abort(c, http.StatusRequestEntityTooLarge, "Notification body too large")
			return
		}
		logger.WarnCtx(c.Request.Context(), "Failed to read webhook body", logger.Err(err))
	}

	query := c.Request.URL.Query()
	notification := &models.PaymentNotification{
		Topic:      firstNonEmpty(query.Get("topic"), query.Get("type")),
		ResourceID: firstNonEmpty(query.Get("id"), query.Get("data.id")),
		Query:      query,
		Payload:    string(raw),
	}

	var body webhookBody
	if len(raw) > 0 && json.Unmarshal(raw, &body) == nil {
		notification.Action = body.Action
		notification.Topic = firstNonEmpty(notification.Topic, body.Type)
		notification.ResourceID = firstNonEmpty(notification.ResourceID, rawID(body.Data.ID))
	}

	if err := h.paymentUC.HandleNotification(c.Request.Context(), notification); err != nil {
		logger.WarnCtx(c.Request.Context(), "Payment notification not fully processed",
			logger.String("notification_id", notification.ID),
			logger.Err(err))
	}

	c.JSON(http.StatusOK, utils.Response{Success: true, Message: "Notification received"})
}

// rawID accepts both numeric and string ids
func rawID(raw json.RawMessage) string {
	id := strings.Trim(string(raw), `"`)
	if id == "null" {
		return ""
	}
	return id
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
