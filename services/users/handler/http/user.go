package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/viajemos/viajemos/internal/pkg/middleware"
	"github.com/viajemos/viajemos/internal/pkg/models"
	"github.com/viajemos/viajemos/internal/utils"
	"github.com/viajemos/viajemos/services/users"
)

// UserHandler handles profile and rating requests
type UserHandler struct {
	userUC users.UserUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUC users.UserUC) *UserHandler {
	return &UserHandler{userUC: userUC}
}

// GetMe returns the caller's profile
func (h *UserHandler) GetMe(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return handleError(c, err, "retrieve profile")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", user)
}

// UpdateMe applies a partial profile update
func (h *UserHandler) UpdateMe(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var update models.ProfileUpdate
	if err := c.Bind(&update); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), userID, &update)
	if err != nil {
		return handleError(c, err, "update profile")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", user)
}

// GetUser returns another user's public profile
func (h *UserHandler) GetUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return handleError(c, err, "retrieve user")
	}
	return utils.SuccessResponse(c, http.StatusOK, "User retrieved successfully", user)
}

// RateUser rates the user in the path for a shared trip
func (h *UserHandler) RateUser(c echo.Context) error {
	raterID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	ratedID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	var req models.RatingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	rating, err := h.userUC.RateUser(c.Request().Context(), raterID, ratedID, &req)
	if err != nil {
		return handleError(c, err, "rate user")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Rating saved successfully", rating)
}

// ListRatings returns the ratings a user received
func (h *UserHandler) ListRatings(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	ratings, err := h.userUC.ListRatings(c.Request().Context(), userID)
	if err != nil {
		return handleError(c, err, "list ratings")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ratings retrieved successfully", ratings)
}
