package http

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/viajemos/viajemos/internal/pkg/logger"
	"github.com/viajemos/viajemos/internal/utils"
	"github.com/viajemos/viajemos/services/shipments"
)

// handleError maps usecase errors onto HTTP responses
func handleError(c echo.Context, err error, action string) error {
	switch {
	case errors.Is(err, shipments.ErrInvalidInput),
		errors.Is(err, shipments.ErrInvalidPIN):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, shipments.ErrNotDriver),
		errors.Is(err, shipments.ErrNotShipmentSender),
		errors.Is(err, shipments.ErrNotAssignedDriver),
		errors.Is(err, shipments.ErrNotShipmentParty),
		errors.Is(err, shipments.ErrNotTripDriver):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, shipments.ErrShipmentNotFound),
		errors.Is(err, shipments.ErrTripNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, shipments.ErrInvalidTransition),
		errors.Is(err, shipments.ErrTripNotActive),
		errors.Is(err, shipments.ErrTripMismatch),
		errors.Is(err, shipments.ErrPackageNotAccepted):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, shipments.ErrPINLocked):
		return utils.TooManyRequestsResponse(c, err.Error())
	case errors.Is(err, shipments.ErrTripsUnavailable):
		return utils.ServiceUnavailableResponse(c, err.Error())
	}

	logger.ErrorCtx(c.Request().Context(), "Failed to "+action, logger.Err(err))
	return utils.InternalServerErrorResponse(c, "Failed to "+action)
}
