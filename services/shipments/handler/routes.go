package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/viajemos/viajemos/internal/pkg/middleware"
	"github.com/viajemos/viajemos/internal/pkg/models"
	"github.com/viajemos/viajemos/services/shipments/handler/http"
	natsHandler "github.com/viajemos/viajemos/services/shipments/handler/nats"
)

// Handler coordinates all protocol handlers for the shipments service
type Handler struct {
	shipmentHandler *http.ShipmentHandler
	natsHandler     *natsHandler.NatsHandler
	cfg             *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(shipmentHandler *http.ShipmentHandler, natsHandler *natsHandler.NatsHandler, cfg *models.Config) *Handler {
	return &Handler{
		shipmentHandler: shipmentHandler,
		natsHandler:     natsHandler,
		cfg:             cfg,
	}
}

// InitNATSConsumers starts the trip event consumers
func (h *Handler) InitNATSConsumers() error {
	return h.natsHandler.InitConsumers()
}

// CloseNATSConsumers stops the trip event consumers
func (h *Handler) CloseNATSConsumers() {
	h.natsHandler.Close()
}

// RegisterRoutes registers all protocol handlers and their routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	jwt := middleware.JWTAuthMiddleware(h.cfg.JWT)
	driverOnly := middleware.RequireRole(models.RoleDriver)

	group := e.Group("/shipments", jwt)
	group.POST("", h.shipmentHandler.CreateShipment)
	group.GET("/mine", h.shipmentHandler.ListMyShipments)
	group.GET("/open", h.shipmentHandler.ListOpenShipments, driverOnly)
	group.GET("/assigned", h.shipmentHandler.ListAssignedShipments, driverOnly)
	group.GET("/:id", h.shipmentHandler.GetShipment)
	group.GET("/:id/suggestions", h.shipmentHandler.SuggestTrips)
	group.POST("/:id/accept", h.shipmentHandler.AcceptShipment, driverOnly)
	group.POST("/:id/start", h.shipmentHandler.StartShipment, driverOnly)
	group.POST("/:id/deliver", h.shipmentHandler.DeliverShipment, driverOnly)
	group.POST("/:id/cancel", h.shipmentHandler.CancelShipment)
}
