package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/viajemos/viajemos/internal/pkg/matching"
	"github.com/viajemos/viajemos/internal/pkg/middleware"
	"github.com/viajemos/viajemos/internal/pkg/models"
	"github.com/viajemos/viajemos/internal/utils"
	"github.com/viajemos/viajemos/services/trips"
)

// TripHandler handles trip requests
type TripHandler struct {
	tripUC trips.TripUC
}

// NewTripHandler creates a new trip handler
func NewTripHandler(tripUC trips.TripUC) *TripHandler {
	return &TripHandler{tripUC: tripUC}
}

// PublishTrip publishes a trip for the calling driver
func (h *TripHandler) PublishTrip(c echo.Context) error {
	driverID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.TripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	trip, err := h.tripUC.PublishTrip(c.Request().Context(), driverID, middleware.GetUserRole(c), &req)
	if err != nil {
		return handleError(c, err, "publish trip")
	}
	middleware.SetTripID(c, trip.ID.String())
	return utils.SuccessResponse(c, http.StatusCreated, "Trip published successfully", trip)
}

// GetTrip returns a trip by ID
func (h *TripHandler) GetTrip(c echo.Context) error {
	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	trip, err := h.tripUC.GetTrip(c.Request().Context(), tripID)
	if err != nil {
		return handleError(c, err, "retrieve trip")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip retrieved successfully", trip)
}

// ListMyTrips lists the caller's published trips
func (h *TripHandler) ListMyTrips(c echo.Context) error {
	driverID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	list, err := h.tripUC.ListDriverTrips(c.Request().Context(), driverID)
	if err != nil {
		return handleError(c, err, "list trips")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trips retrieved successfully", list)
}

// CancelTrip cancels one of the caller's trips
func (h *TripHandler) CancelTrip(c echo.Context) error {
	return h.changeStatus(c, h.tripUC.CancelTrip, "cancel trip", "Trip cancelled successfully")
}

// CompleteTrip marks one of the caller's trips completed
func (h *TripHandler) CompleteTrip(c echo.Context) error {
	return h.changeStatus(c, h.tripUC.CompleteTrip, "complete trip", "Trip completed successfully")
}

type statusChange func(ctx context.Context, driverID, tripID uuid.UUID) (*models.Trip, error)

func (h *TripHandler) changeStatus(c echo.Context, change statusChange, action, message string) error {
	driverID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}
	middleware.SetTripID(c, tripID.String())

	trip, err := change(c.Request().Context(), driverID, tripID)
	if err != nil {
		return handleError(c, err, action)
	}
	return utils.SuccessResponse(c, http.StatusOK, message, trip)
}

// SearchTrips filters active trips by the query string criteria
func (h *TripHandler) SearchTrips(c echo.Context) error {
	criteria := matching.FromValues(c.QueryParams())

	result, err := h.tripUC.SearchTrips(c.Request().Context(), criteria)
	if err != nil {
		return handleError(c, err, "search trips")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trips retrieved successfully", result)
}
