package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/viajemos/viajemos/internal/pkg/middleware"
	"github.com/viajemos/viajemos/internal/pkg/models"
	"github.com/viajemos/viajemos/internal/pkg/websocket"
	"github.com/viajemos/viajemos/services/trips/handler/http"
	natsHandler "github.com/viajemos/viajemos/services/trips/handler/nats"
)

// Handler coordinates all protocol handlers for the trips service
type Handler struct {
	tripHandler        *http.TripHandler
	reservationHandler *http.ReservationHandler
	wsManager          *websocket.Manager
	natsHandler        *natsHandler.NatsHandler
	cfg                *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	tripHandler *http.TripHandler,
	reservationHandler *http.ReservationHandler,
	wsManager *websocket.Manager,
	natsHandler *natsHandler.NatsHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		tripHandler:        tripHandler,
		reservationHandler: reservationHandler,
		wsManager:          wsManager,
		natsHandler:        natsHandler,
		cfg:                cfg,
	}
}

// InitNATSConsumers starts the websocket feed consumers
func (h *Handler) InitNATSConsumers() error {
	return h.natsHandler.InitConsumers()
}

// CloseNATSConsumers stops the websocket feed consumers
func (h *Handler) CloseNATSConsumers() {
	h.natsHandler.Close()
}

// RegisterRoutes registers all protocol handlers and their routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public routes
	e.GET("/trips/search", h.tripHandler.SearchTrips)
	e.GET("/trips/:id", h.tripHandler.GetTrip)

	// WebSocket feed authenticates with the token itself
	e.GET("/ws", h.wsManager.HandleConnection)

	jwt := middleware.JWTAuthMiddleware(h.cfg.JWT)

	tripsGroup := e.Group("/trips", jwt)
	tripsGroup.POST("", h.tripHandler.PublishTrip, middleware.RequireRole(models.RoleDriver))
	tripsGroup.GET("/mine", h.tripHandler.ListMyTrips)
	tripsGroup.POST("/:id/cancel", h.tripHandler.CancelTrip)
	tripsGroup.POST("/:id/complete", h.tripHandler.CompleteTrip)
	tripsGroup.POST("/:id/reservations", h.reservationHandler.Reserve)
	tripsGroup.GET("/:id/reservations", h.reservationHandler.ListTripReservations)

	reservationsGroup := e.Group("/reservations", jwt)
	reservationsGroup.GET("/mine", h.reservationHandler.ListMyReservations)
	reservationsGroup.PUT("/:id/decision", h.reservationHandler.Decide)
	reservationsGroup.POST("/:id/cancel", h.reservationHandler.Cancel)
}
