package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/viajemos/viajemos/services/payments/handler/http"
)

// Handler coordinates all protocol handlers for the payments relay
type Handler struct {
	paymentHandler *http.PaymentHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(paymentHandler *http.PaymentHandler) *Handler {
	return &Handler{paymentHandler: paymentHandler}
}

// RegisterRoutes registers the relay routes
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/create_preference", h.paymentHandler.CreatePreference)
	r.POST("/webhook", h.paymentHandler.Webhook)
}
