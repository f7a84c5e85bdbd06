package http

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/viajemos/viajemos/internal/pkg/logger"
	"github.com/viajemos/viajemos/internal/utils"
	"github.com/viajemos/viajemos/services/users"
)

// handleError maps usecase errors onto HTTP responses
func handleError(c echo.Context, err error, action string) error {
	switch {
	case errors.Is(err, users.ErrInvalidInput),
		errors.Is(err, users.ErrSelfRating),
		errors.Is(err, users.ErrDocumentMissing):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, users.ErrInvalidCredentials):
		return utils.UnauthorizedResponse(c, err.Error())
	case errors.Is(err, users.ErrNotVehicleOwner),
		errors.Is(err, users.ErrNotDriver):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, users.ErrUserNotFound),
		errors.Is(err, users.ErrVehicleNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, users.ErrEmailTaken),
		errors.Is(err, users.ErrPlateTaken),
		errors.Is(err, users.ErrVehicleChanged),
		errors.Is(err, users.ErrDuplicateRating):
		return utils.ConflictResponse(c, err.Error())
	}

	logger.ErrorCtx(c.Request().Context(), "Failed to "+action, logger.Err(err))
	return utils.InternalServerErrorResponse(c, "Failed to "+action)
}
