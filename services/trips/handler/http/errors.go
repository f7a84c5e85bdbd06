package http

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/viajemos/viajemos/internal/pkg/logger"
	"github.com/viajemos/viajemos/internal/utils"
	"github.com/viajemos/viajemos/services/trips"
)

// handleError maps usecase errors onto HTTP responses
func handleError(c echo.Context, err error, action string) error {
	switch {
	case errors.Is(err, trips.ErrInvalidInput),
		errors.Is(err, trips.ErrOwnTrip):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, trips.ErrNotDriver),
		errors.Is(err, trips.ErrNotTripDriver),
		errors.Is(err, trips.ErrVehicleNotOwned),
		errors.Is(err, trips.ErrVehicleNotVerified),
		errors.Is(err, trips.ErrNotReservationOwner):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, trips.ErrTripNotFound),
		errors.Is(err, trips.ErrVehicleNotFound),
		errors.Is(err, trips.ErrReservationNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, trips.ErrTripNotActive),
		errors.Is(err, trips.ErrNotEnoughSeats),
		errors.Is(err, trips.ErrDuplicateReservation),
		errors.Is(err, trips.ErrInvalidTransition):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, trips.ErrUsersUnavailable):
		return utils.ServiceUnavailableResponse(c, err.Error())
	}

	logger.ErrorCtx(c.Request().Context(), "Failed to "+action, logger.Err(err))
	return utils.InternalServerErrorResponse(c, "Failed to "+action)
}
