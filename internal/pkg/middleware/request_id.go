package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/viajemos/viajemos/internal/pkg/logger"
)

// RequestIDMiddleware propagates X-Request-ID, generating one when absent,
// and stores a request-scoped logger on the request context.
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			c.Set("request_id", requestID)
			c.Response().Header().Set(echo.HeaderXRequestID, requestID)

			ctx := logger.WithContext(c.Request().Context(), logger.With(logger.String("request_id", requestID)))
			c.SetRequest(c.Request().WithContext(ctx))

			AddAttribute(c, "request_id", requestID)
			return next(c)
		}
	}
}
