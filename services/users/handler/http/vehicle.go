package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/viajemos/viajemos/internal/pkg/middleware"
	"github.com/viajemos/viajemos/internal/pkg/models"
	"github.com/viajemos/viajemos/internal/pkg/verification"
	"github.com/viajemos/viajemos/internal/utils"
	"github.com/viajemos/viajemos/services/users"
)

// VehicleHandler handles vehicle and document requests
type VehicleHandler struct {
	userUC users.UserUC
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(userUC users.UserUC) *VehicleHandler {
	return &VehicleHandler{userUC: userUC}
}

// ownerAndVehicle reads the caller and the :id vehicle. When ok is false
// the error response has already been written and its result is returned.
func ownerAndVehicle(c echo.Context) (ownerID, vehicleID uuid.UUID, ok bool, err error) {
	ownerID, ok = middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, uuid.Nil, false, utils.UnauthorizedResponse(c, "")
	}
	vehicleID, err = uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, false, utils.BadRequestResponse(c, "Invalid vehicle ID")
	}
	return ownerID, vehicleID, true, nil
}

// AddVehicle registers a vehicle for the caller
func (h *VehicleHandler) AddVehicle(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.VehicleRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	vehicle, err := h.userUC.AddVehicle(c.Request().Context(), ownerID, &req)
	if err != nil {
		return handleError(c, err, "register vehicle")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Vehicle registered successfully", vehicle)
}

// ListVehicles lists the caller's vehicles
func (h *VehicleHandler) ListVehicles(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	vehicles, err := h.userUC.ListVehicles(c.Request().Context(), ownerID)
	if err != nil {
		return handleError(c, err, "list vehicles")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Vehicles retrieved successfully", vehicles)
}

// GetVehicle returns one of the caller's vehicles
func (h *VehicleHandler) GetVehicle(c echo.Context) error {
	ownerID, vehicleID, ok, err := ownerAndVehicle(c)
	if !ok {
		return err
	}

	vehicle, err := h.userUC.GetVehicle(c.Request().Context(), ownerID, vehicleID)
	if err != nil {
		return handleError(c, err, "retrieve vehicle")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Vehicle retrieved successfully", vehicle)
}

// DeleteVehicle removes one of the caller's vehicles
func (h *VehicleHandler) DeleteVehicle(c echo.Context) error {
	ownerID, vehicleID, ok, err := ownerAndVehicle(c)
	if !ok {
		return err
	}

	if err := h.userUC.DeleteVehicle(c.Request().Context(), ownerID, vehicleID); err != nil {
		return handleError(c, err, "delete vehicle")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Vehicle deleted successfully", nil)
}

// SubmitDocument uploads a document URL for review
func (h *VehicleHandler) SubmitDocument(c echo.Context) error {
	ownerID, vehicleID, ok, err := ownerAndVehicle(c)
	if !ok {
		return err
	}
	category, err := verification.ParseCategory(c.Param("category"))
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	var req models.DocumentSubmission
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	vehicle, err := h.userUC.SubmitDocument(c.Request().Context(), ownerID, vehicleID, category, req.URL)
	if err != nil {
		return handleError(c, err, "submit document")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Document submitted for review", vehicle)
}

// GetVehicleStatus serves the internal verification summary
func (h *VehicleHandler) GetVehicleStatus(c echo.Context) error {
	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid vehicle ID")
	}

	status, err := h.userUC.GetVehicleStatus(c.Request().Context(), vehicleID)
	if err != nil {
		return handleError(c, err, "retrieve vehicle status")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Vehicle status retrieved successfully", status)
}

// ReviewDocument records a reviewer decision on a document
func (h *VehicleHandler) ReviewDocument(c echo.Context) error {
	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid vehicle ID")
	}
	category, err := verification.ParseCategory(c.Param("category"))
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	var review models.DocumentReview
	if err := c.Bind(&review); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	vehicle, err := h.userUC.ReviewDocument(c.Request().Context(), vehicleID, category, &review)
	if err != nil {
		return handleError(c, err, "review document")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Document reviewed successfully", vehicle)
}
