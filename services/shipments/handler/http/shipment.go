package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/viajemos/viajemos/internal/pkg/middleware"
	"github.com/viajemos/viajemos/internal/pkg/models"
	"github.com/viajemos/viajemos/internal/utils"
	"github.com/viajemos/viajemos/services/shipments"
)

// ShipmentHandler handles shipment requests
type ShipmentHandler struct {
	shipmentUC shipments.ShipmentUC
}

// NewShipmentHandler creates a new shipment handler
func NewShipmentHandler(shipmentUC shipments.ShipmentUC) *ShipmentHandler {
	return &ShipmentHandler{shipmentUC: shipmentUC}
}

func userAndShipment(c echo.Context) (userID, shipmentID uuid.UUID, ok bool, err error) {
	userID, ok = middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, uuid.Nil, false, utils.UnauthorizedResponse(c, "")
	}
	shipmentID, err = uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, false, utils.BadRequestResponse(c, "Invalid shipment ID")
	}
	return userID, shipmentID, true, nil
}

// CreateShipment registers a shipment for the caller
func (h *ShipmentHandler) CreateShipment(c echo.Context) error {
	senderID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.ShipmentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	shipment, err := h.shipmentUC.CreateShipment(c.Request().Context(), senderID, &req)
	if err != nil {
		return handleError(c, err, "create shipment")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Shipment created successfully", shipment)
}

// GetShipment returns a shipment by ID
func (h *ShipmentHandler) GetShipment(c echo.Context) error {
	userID, shipmentID, ok, err := userAndShipment(c)
	if !ok {
		return err
	}

	shipment, err := h.shipmentUC.GetShipment(c.Request().Context(), userID, shipmentID)
	if err != nil {
		return handleError(c, err, "retrieve shipment")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Shipment retrieved successfully", shipment)
}

// ListMyShipments lists the shipments the caller sent
func (h *ShipmentHandler) ListMyShipments(c echo.Context) error {
	return h.list(c, h.shipmentUC.ListSenderShipments)
}

// ListAssignedShipments lists the shipments the caller carries
func (h *ShipmentHandler) ListAssignedShipments(c echo.Context) error {
	return h.list(c, h.shipmentUC.ListDriverShipments)
}

func (h *ShipmentHandler) list(c echo.Context, fetch func(ctx context.Context, userID uuid.UUID) ([]*models.Shipment, error)) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	list, err := fetch(c.Request().Context(), userID)
	if err != nil {
		return handleError(c, err, "list shipments")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Shipments retrieved successfully", list)
}

// ListOpenShipments lists shipments waiting for a driver
func (h *ShipmentHandler) ListOpenShipments(c echo.Context) error {
	list, err := h.shipmentUC.ListOpenShipments(c.Request().Context())
	if err != nil {
		return handleError(c, err, "list shipments")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Shipments retrieved successfully", list)
}

// AcceptShipment assigns the shipment to one of the caller's trips
func (h *ShipmentHandler) AcceptShipment(c echo.Context) error {
	driverID, shipmentID, ok, err := userAndShipment(c)
	if !ok {
		return err
	}

	var req models.ShipmentAcceptRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	shipment, err := h.shipmentUC.AcceptShipment(c.Request().Context(), driverID, middleware.GetUserRole(c), shipmentID, &req)
	if err != nil {
		return handleError(c, err, "accept shipment")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Shipment accepted successfully", shipment)
}

// StartShipment records the pickup
func (h *ShipmentHandler) StartShipment(c echo.Context) error {
	driverID, shipmentID, ok, err := userAndShipment(c)
	if !ok {
		return err
	}

	shipment, err := h.shipmentUC.StartShipment(c.Request().Context(), driverID, shipmentID)
	if err != nil {
		return handleError(c, err, "start shipment")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Shipment picked up successfully", shipment)
}

// DeliverShipment completes the shipment with the recipient's PIN
func (h *ShipmentHandler) DeliverShipment(c echo.Context) error {
	driverID, shipmentID, ok, err := userAndShipment(c)
	if !ok {
		return err
	}

	var req models.DeliveryConfirmation
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	shipment, err := h.shipmentUC.DeliverShipment(c.Request().Context(), driverID, shipmentID, req.PIN)
	if err != nil {
		return handleError(c, err, "deliver shipment")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Shipment delivered successfully", shipment)
}

// CancelShipment cancels the shipment for its sender or driver
func (h *ShipmentHandler) CancelShipment(c echo.Context) error {
	userID, shipmentID, ok, err := userAndShipment(c)
	if !ok {
		return err
	}

	shipment, err := h.shipmentUC.CancelShipment(c.Request().Context(), userID, shipmentID)
	if err != nil {
		return handleError(c, err, "cancel shipment")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Shipment cancelled successfully", shipment)
}

// SuggestTrips lists trips that could carry the shipment
func (h *ShipmentHandler) SuggestTrips(c echo.Context) error {
	senderID, shipmentID, ok, err := userAndShipment(c)
	if !ok {
		return err
	}

	found, err := h.shipmentUC.SuggestTrips(c.Request().Context(), senderID, shipmentID)
	if err != nil {
		return handleError(c, err, "suggest trips")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trips retrieved successfully", found)
}
