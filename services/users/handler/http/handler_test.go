package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viajemos/viajemos/internal/pkg/middleware"
	"github.com/viajemos/viajemos/internal/pkg/models"
	"github.com/viajemos/viajemos/internal/pkg/verification"
	"github.com/viajemos/viajemos/services/users"
	"github.com/viajemos/viajemos/services/users/mocks"
)

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mockSetup  func(m *mocks.MockUserUC)
		wantStatus int
	}{
		{
			name: "created",
			body: `{"email":"ana@example.com","password":"secreto123","full_name":"Ana","phone":"1145551234","role":"conductor"}`,
			mockSetup: func(m *mocks.MockUserUC) {
				m.EXPECT().Register(gomock.Any(), &models.RegisterRequest{
					Email: "ana@example.com", Password: "secreto123", FullName: "Ana", Phone: "1145551234", Role: models.RoleDriver,
				}).Return(&models.User{ID: uuid.New(), Email: "ana@example.com"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "invalid input",
			body: `{"email":"x"}`,
			mockSetup: func(m *mocks.MockUserUC) {
				m.EXPECT().Register(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: a valid email is required", users.ErrInvalidInput))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "email taken",
			body: `{"email":"ana@example.com"}`,
			mockSetup: func(m *mocks.MockUserUC) {
				m.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, users.ErrEmailTaken)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "malformed json",
			body:       `{"email":`,
			mockSetup:  func(m *mocks.MockUserUC) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockUserUC := mocks.NewMockUserUC(ctrl)
			tt.mockSetup(mockUserUC)

			c, rec := newContext(http.MethodPost, "/auth/register", tt.body)
			assert.NoError(t, NewAuthHandler(mockUserUC).Register(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUserUC := mocks.NewMockUserUC(ctrl)
	mockUserUC.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, users.ErrInvalidCredentials)

	c, rec := newContext(http.MethodPost, "/auth/login", `{"email":"ana@example.com","password":"nope"}`)
	assert.NoError(t, NewAuthHandler(mockUserUC).Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, false, decode(t, rec)["success"])
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUserUC := mocks.NewMockUserUC(ctrl)
	mockUserUC.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(&models.LoginResponse{Token: "tok", ExpiresAt: 1700000000}, nil)

	c, rec := newContext(http.MethodPost, "/auth/login", `{"email":"ana@example.com","password":"secreto123"}`)
	assert.NoError(t, NewAuthHandler(mockUserUC).Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	data := decode(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, "tok", data["token"])
}

func TestGetMe(t *testing.T) {
	t.Run("unauthenticated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		c, rec := newContext(http.MethodGet, "/users/me", "")

		assert.NoError(t, NewUserHandler(mocks.NewMockUserUC(ctrl)).GetMe(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockUserUC := mocks.NewMockUserUC(ctrl)
		userID := uuid.New()
		mockUserUC.EXPECT().GetProfile(gomock.Any(), userID).
			Return(&models.User{ID: userID, FullName: "Ana", PasswordHash: "secret-hash"}, nil)

		c, rec := newContext(http.MethodGet, "/users/me", "")
		c.Set(middleware.ContextUserID, userID)

		assert.NoError(t, NewUserHandler(mockUserUC).GetMe(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "secret-hash")
	})
}

func TestGetUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUserUC := mocks.NewMockUserUC(ctrl)
	handler := NewUserHandler(mockUserUC)

	c, rec := newContext(http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")
	assert.NoError(t, handler.GetUser(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	missing := uuid.New()
	mockUserUC.EXPECT().GetProfile(gomock.Any(), missing).Return(nil, users.ErrUserNotFound)
	c, rec = newContext(http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues(missing.String())
	assert.NoError(t, handler.GetUser(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRateUser(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "created", wantStatus: http.StatusCreated},
		{name: "self rating", err: users.ErrSelfRating, wantStatus: http.StatusBadRequest},
		{name: "duplicate", err: users.ErrDuplicateRating, wantStatus: http.StatusConflict},
		{name: "unexpected", err: errors.New("db down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockUserUC := mocks.NewMockUserUC(ctrl)
			raterID, ratedID := uuid.New(), uuid.New()

			var rating *models.Rating
			if tt.err == nil {
				rating = &models.Rating{ID: uuid.New(), Score: 5}
			}
			mockUserUC.EXPECT().
				RateUser(gomock.Any(), raterID, ratedID, &models.RatingRequest{TripID: "t-1", Score: 5}).
				Return(rating, tt.err)

			c, rec := newContext(http.MethodPost, "/", `{"trip_id":"t-1","score":5}`)
			c.Set(middleware.ContextUserID, raterID)
			c.SetParamNames("id")
			c.SetParamValues(ratedID.String())

			assert.NoError(t, NewUserHandler(mockUserUC).RateUser(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestSubmitDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUserUC := mocks.NewMockUserUC(ctrl)
	handler := NewVehicleHandler(mockUserUC)
	ownerID, vehicleID := uuid.New(), uuid.New()

	t.Run("unknown category", func(t *testing.T) {
		c, rec := newContext(http.MethodPut, "/", `{"url":"https://x/doc"}`)
		c.Set(middleware.ContextUserID, ownerID)
		c.SetParamNames("id", "category")
		c.SetParamValues(vehicleID.String(), "license")

		assert.NoError(t, handler.SubmitDocument(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not the owner", func(t *testing.T) {
		mockUserUC.EXPECT().
			SubmitDocument(gomock.Any(), ownerID, vehicleID, verification.CategoryInsurance, "https://x/doc").
			Return(nil, users.ErrNotVehicleOwner)

		c, rec := newContext(http.MethodPut, "/", `{"url":"https://x/doc"}`)
		c.Set(middleware.ContextUserID, ownerID)
		c.SetParamNames("id", "category")
		c.SetParamValues(vehicleID.String(), "insurance")

		assert.NoError(t, handler.SubmitDocument(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestReviewDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUserUC := mocks.NewMockUserUC(ctrl)
	vehicleID := uuid.New()

	mockUserUC.EXPECT().
		ReviewDocument(gomock.Any(), vehicleID, verification.CategoryInspection,
			&models.DocumentReview{Status: verification.StatusApproved, Note: "ok"}).
		Return(&models.Vehicle{ID: vehicleID, VerificationStatus: verification.StatusApproved}, nil)

	c, rec := newContext(http.MethodPut, "/", `{"status":"approved","note":"ok"}`)
	c.SetParamNames("id", "category")
	c.SetParamValues(vehicleID.String(), "inspection")

	assert.NoError(t, NewVehicleHandler(mockUserUC).ReviewDocument(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	data := decode(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, "approved", data["verification_status"])
}

func TestReviewDocument_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUserUC := mocks.NewMockUserUC(ctrl)
	vehicleID := uuid.New()

	mockUserUC.EXPECT().ReviewDocument(gomock.Any(), vehicleID, verification.CategoryInsurance, gomock.Any()).
		Return(nil, users.ErrVehicleChanged)

	c, rec := newContext(http.MethodPut, "/", `{"status":"approved"}`)
	c.SetParamNames("id", "category")
	c.SetParamValues(vehicleID.String(), "insurance")

	assert.NoError(t, NewVehicleHandler(mockUserUC).ReviewDocument(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetVehicleStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUserUC := mocks.NewMockUserUC(ctrl)
	vehicleID := uuid.New()

	mockUserUC.EXPECT().GetVehicleStatus(gomock.Any(), vehicleID).Return(nil, users.ErrVehicleNotFound)

	c, rec := newContext(http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues(vehicleID.String())

	assert.NoError(t, NewVehicleHandler(mockUserUC).GetVehicleStatus(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
