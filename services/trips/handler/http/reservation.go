package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/viajemos/viajemos/internal/pkg/middleware"
	"github.com/viajemos/viajemos/internal/pkg/models"
	"github.com/viajemos/viajemos/internal/utils"
	"github.com/viajemos/viajemos/services/trips"
)

// ReservationHandler handles seat reservation requests
type ReservationHandler struct {
	tripUC trips.TripUC
}

// NewReservationHandler creates a new reservation handler
func NewReservationHandler(tripUC trips.TripUC) *ReservationHandler {
	return &ReservationHandler{tripUC: tripUC}
}

func userAndParam(c echo.Context, label string) (userID, id uuid.UUID, ok bool, err error) {
	userID, ok = middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, uuid.Nil, false, utils.UnauthorizedResponse(c, "")
	}
	id, err = uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, false, utils.BadRequestResponse(c, "Invalid "+label+" ID")
	}
	return userID, id, true, nil
}

// Reserve books seats on the trip in the path
func (h *ReservationHandler) Reserve(c echo.Context) error {
	passengerID, tripID, ok, err := userAndParam(c, "trip")
	if !ok {
		return err
	}
	middleware.SetTripID(c, tripID.String())

	var req models.ReservationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	reservation, err := h.tripUC.ReserveSeats(c.Request().Context(), passengerID, tripID, &req)
	if err != nil {
		return handleError(c, err, "reserve seats")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Reservation created successfully", reservation)
}

// ListTripReservations lists the reservations on one of the caller's trips
func (h *ReservationHandler) ListTripReservations(c echo.Context) error {
	driverID, tripID, ok, err := userAndParam(c, "trip")
	if !ok {
		return err
	}

	list, err := h.tripUC.ListTripReservations(c.Request().Context(), driverID, tripID)
	if err != nil {
		return handleError(c, err, "list reservations")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Reservations retrieved successfully", list)
}

// ListMyReservations lists the caller's reservations as a passenger
func (h *ReservationHandler) ListMyReservations(c echo.Context) error {
	passengerID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	list, err := h.tripUC.ListPassengerReservations(c.Request().Context(), passengerID)
	if err != nil {
		return handleError(c, err, "list reservations")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Reservations retrieved successfully", list)
}

// Decide confirms or rejects a pending reservation
func (h *ReservationHandler) Decide(c echo.Context) error {
	driverID, reservationID, ok, err := userAndParam(c, "reservation")
	if !ok {
		return err
	}

	var decision models.ReservationDecision
	if err := c.Bind(&decision); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	reservation, err := h.tripUC.DecideReservation(c.Request().Context(), driverID, reservationID, decision.Status)
	if err != nil {
		return handleError(c, err, "update reservation")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Reservation updated successfully", reservation)
}

// Cancel withdraws one of the caller's reservations
func (h *ReservationHandler) Cancel(c echo.Context) error {
	passengerID, reservationID, ok, err := userAndParam(c, "reservation")
	if !ok {
		return err
	}

	reservation, err := h.tripUC.CancelReservation(c.Request().Context(), passengerID, reservationID)
	if err != nil {
		return handleError(c, err, "cancel reservation")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Reservation cancelled successfully", reservation)
}
