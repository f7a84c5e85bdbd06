package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	return e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec), rec
}

func TestSuccessResponse(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		message    string
		data       interface{}
	}{
		{"created with map data", http.StatusCreated, "Trip published", map[string]interface{}{"id": "123"}},
		{"ok with nil data", http.StatusOK, "Success", nil},
		{"ok with empty message", http.StatusOK, "", "data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()
			require.NoError(t, SuccessResponse(c, tt.statusCode, tt.message, tt.data))
			assert.Equal(t, tt.statusCode, rec.Code)

			var response Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.True(t, response.Success)
			assert.Equal(t, tt.message, response.Message)
			assert.Equal(t, tt.data, response.Data)
		})
	}
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name     string
		send     func(echo.Context) error
		status   int
		expected string
	}{
		{"bad request", func(c echo.Context) error { return BadRequestResponse(c, "Invalid input") }, http.StatusBadRequest, "Invalid input"},
		{"unauthorized default", func(c echo.Context) error { return UnauthorizedResponse(c, "") }, http.StatusUnauthorized, "Unauthorized"},
		{"forbidden custom", func(c echo.Context) error { return ForbiddenResponse(c, "drivers only") }, http.StatusForbidden, "drivers only"},
		{"not found default", func(c echo.Context) error { return NotFoundResponse(c, "") }, http.StatusNotFound, "Resource not found"},
		{"conflict default", func(c echo.Context) error { return ConflictResponse(c, "") }, http.StatusConflict, "Conflict"},
		{"too many requests", func(c echo.Context) error { return TooManyRequestsResponse(c, "") }, http.StatusTooManyRequests, "Too many requests"},
		{"internal default", func(c echo.Context) error { return InternalServerErrorResponse(c, "") }, http.StatusInternalServerError, "Internal server error"},
		{"unavailable custom", func(c echo.Context) error { return ServiceUnavailableResponse(c, "db down") }, http.StatusServiceUnavailable, "db down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()
			require.NoError(t, tt.send(c))
			assert.Equal(t, tt.status, rec.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.False(t, response.Success)
			assert.Equal(t, tt.expected, response.Error)
			assert.Equal(t, tt.status, response.Code)
		})
	}
}
