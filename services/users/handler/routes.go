package handler

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/viajemos/viajemos/internal/pkg/database"
	"github.com/viajemos/viajemos/internal/pkg/middleware"
	"github.com/viajemos/viajemos/internal/pkg/models"
	"github.com/viajemos/viajemos/services/users/handler/http"
)

const (
	loginRateLimit  = 10
	loginRatePeriod = time.Minute
)

// Handler coordinates all protocol handlers for the users service
type Handler struct {
	authHandler    *http.AuthHandler
	userHandler    *http.UserHandler
	vehicleHandler *http.VehicleHandler
	redis          *database.RedisClient
	cfg            *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *http.AuthHandler,
	userHandler *http.UserHandler,
	vehicleHandler *http.VehicleHandler,
	redis *database.RedisClient,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler:    authHandler,
		userHandler:    userHandler,
		vehicleHandler: vehicleHandler,
		redis:          redis,
		cfg:            cfg,
	}
}

// RegisterRoutes registers all protocol handlers and their routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public routes (no authentication required)
	authGroup := e.Group("/auth")
	authGroup.POST("/register", h.authHandler.Register)
	authGroup.POST("/login", h.authHandler.Login, middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		Redis:  h.redis,
		Scope:  "login",
		Limit:  loginRateLimit,
		Period: loginRatePeriod,
	}))

	// Protected routes (user-facing)
	jwt := middleware.JWTAuthMiddleware(h.cfg.JWT)

	userGroup := e.Group("/users", jwt)
	userGroup.GET("/me", h.userHandler.GetMe)
	userGroup.PATCH("/me", h.userHandler.UpdateMe)
	userGroup.GET("/:id", h.userHandler.GetUser)
	userGroup.GET("/:id/ratings", h.userHandler.ListRatings)
	userGroup.POST("/:id/ratings", h.userHandler.RateUser)

	vehicleGroup := e.Group("/vehicles", jwt)
	vehicleGroup.POST("", h.vehicleHandler.AddVehicle, middleware.RequireRole(models.RoleDriver))
	vehicleGroup.GET("", h.vehicleHandler.ListVehicles)
	vehicleGroup.GET("/:id", h.vehicleHandler.GetVehicle)
	vehicleGroup.DELETE("/:id", h.vehicleHandler.DeleteVehicle)
	vehicleGroup.PUT("/:id/documents/:category", h.vehicleHandler.SubmitDocument)

	// Internal routes (service-to-service)
	apiKeys := middleware.NewAPIKeyMiddleware(h.cfg.APIKey)
	internal := e.Group("/internal")
	internal.GET("/vehicles/:id", h.vehicleHandler.GetVehicleStatus,
		apiKeys.ValidateAPIKey(middleware.ServiceTrips, middleware.ServiceShipments))
	internal.PUT("/vehicles/:id/documents/:category/review", h.vehicleHandler.ReviewDocument,
		apiKeys.ValidateAPIKey(middleware.ServiceReviewer))
}
