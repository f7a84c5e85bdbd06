package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"
	httpclient "github.com/viajemos/viajemos/internal/pkg/http"
	"github.com/viajemos/viajemos/internal/pkg/models"
	"github.com/viajemos/viajemos/internal/utils"
)

// Callers that may present an API key
const (
	ServiceUsers     = "users-service"
	ServiceTrips     = "trips-service"
	ServiceShipments = "shipments-service"
	ServiceReviewer  = "reviewer"
)

// APIKeyMiddleware validates the API key for service-to-service communication
type APIKeyMiddleware struct {
	keys map[string]string
}

// NewAPIKeyMiddleware creates an API key validator from configuration
func NewAPIKeyMiddleware(config models.APIKeyConfig) *APIKeyMiddleware {
	return &APIKeyMiddleware{
		keys: map[string]string{
			ServiceUsers:     config.UsersService,
			ServiceTrips:     config.TripsService,
			ServiceShipments: config.ShipmentsService,
			ServiceReviewer:  config.Reviewer,
		},
	}
}

// ValidateAPIKey accepts requests carrying the key of any of allowedServices
func (m *APIKeyMiddleware) ValidateAPIKey(allowedServices ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(httpclient.APIKeyHeader)
			if apiKey == "" {
				return utils.UnauthorizedResponse(c, "API key is required")
			}

			for _, service := range allowedServices {
				expected := m.keys[service]
				if expected != "" && subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) == 1 {
					c.Set("api_caller", service)
					return next(c)
				}
			}

			return utils.UnauthorizedResponse(c, "Invalid API key")
		}
	}
}
