package middleware

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/viajemos/viajemos/internal/pkg/jwt"
	"github.com/viajemos/viajemos/internal/pkg/models"
	"github.com/viajemos/viajemos/internal/utils"
)

// Context keys set by JWTAuthMiddleware
const (
	ContextUserID    = "user_id"
	ContextUserRole  = "user_role"
	ContextUserEmail = "user_email"
)

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextUserRole, claims.Role)
			c.Set(ContextUserEmail, claims.Email)
			SetUserID(c, claims.UserID.String())

			return next(c)
		}
	}
}

// RequireRole rejects authenticated users whose role is not one of roles.
// Must run after JWTAuthMiddleware.
func RequireRole(roles ...models.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextUserRole).(models.Role)
			for _, allowed := range roles {
				if role == allowed {
					return next(c)
				}
			}
			return utils.ForbiddenResponse(c, "Role not allowed for this operation")
		}
	}
}

// GetUserID returns the authenticated user id, or false when the request is anonymous
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(ContextUserID).(uuid.UUID)
	return id, ok && id != uuid.Nil
}

// GetUserRole returns the authenticated user's role
func GetUserRole(c echo.Context) models.Role {
	role, _ := c.Get(ContextUserRole).(models.Role)
	return role
}
