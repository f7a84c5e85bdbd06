package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viajemos/viajemos/internal/pkg/database"
	jwtpkg "github.com/viajemos/viajemos/internal/pkg/jwt"
	"github.com/viajemos/viajemos/internal/pkg/logger"
	"github.com/viajemos/viajemos/internal/pkg/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var testJWT = models.JWTConfig{Secret: "middleware-test-secret", Expiration: 10, Issuer: "test"}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func okHandler(c echo.Context) error { return c.NoContent(http.StatusOK) }

func TestJWTAuthMiddleware(t *testing.T) {
	userID := uuid.New()
	token, _, err := jwtpkg.GenerateToken(userID, "ana@example.com", models.RoleDriver, testJWT)
	require.NoError(t, err)

	e := echo.New()
	e.GET("/me", func(c echo.Context) error {
		id, ok := GetUserID(c)
		assert.True(t, ok)
		assert.Equal(t, userID, id)
		assert.Equal(t, models.RoleDriver, GetUserRole(c))
		assert.Equal(t, "ana@example.com", c.Get(ContextUserEmail))
		return c.NoContent(http.StatusOK)
	}, JWTAuthMiddleware(testJWT))

	tests := []struct {
		name   string
		header string
		status int
	}{
		{name: "valid token", header: "Bearer " + token, status: http.StatusOK},
		{name: "lowercase scheme", header: "bearer " + token, status: http.StatusOK},
		{name: "missing header", header: "", status: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + token, status: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer abc.def.ghi", status: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			assert.Equal(t, tt.status, serve(e, req).Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	e := echo.New()
	e.POST("/trips", okHandler, JWTAuthMiddleware(testJWT), RequireRole(models.RoleDriver))

	for role, status := range map[models.Role]int{
		models.RoleDriver:    http.StatusOK,
		models.RoleTraveller: http.StatusForbidden,
	} {
		token, _, err := jwtpkg.GenerateToken(uuid.New(), "x@example.com", role, testJWT)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPost, "/trips", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		assert.Equal(t, status, serve(e, req).Code, string(role))
	}
}

func TestAPIKeyMiddleware(t *testing.T) {
	m := NewAPIKeyMiddleware(models.APIKeyConfig{TripsService: "trips-key", Reviewer: "review-key"})
	e := echo.New()
	e.GET("/internal/vehicles/:id", okHandler, m.ValidateAPIKey(ServiceTrips))

	tests := []struct {
		name   string
		key    string
		status int
	}{
		{name: "allowed caller", key: "trips-key", status: http.StatusOK},
		{name: "known key of another caller", key: "review-key", status: http.StatusUnauthorized},
		{name: "missing key", key: "", status: http.StatusUnauthorized},
		{name: "unknown key", key: "nope", status: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/internal/vehicles/1", nil)
			if tt.key != "" {
				req.Header.Set("X-API-Key", tt.key)
			}
			assert.Equal(t, tt.status, serve(e, req).Code)
		})
	}
}

func TestAPIKeyMiddleware_EmptyConfiguredKeyNeverMatches(t *testing.T) {
	m := NewAPIKeyMiddleware(models.APIKeyConfig{})
	e := echo.New()
	e.GET("/internal", okHandler, m.ValidateAPIKey(ServiceUsers))

	req := httptest.NewRequest(http.MethodGet, "/internal", nil)
	req.Header.Set("X-API-Key", " ")
	assert.Equal(t, http.StatusUnauthorized, serve(e, req).Code)
}

func TestPanicRecoveryWithZapMiddleware(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	zl := &logger.ZapLogger{Logger: zap.New(core)}

	e := echo.New()
	e.Use(RequestIDMiddleware(), PanicRecoveryWithZapMiddleware(zl))
	e.GET("/boom", func(c echo.Context) error { panic("test panic message") })

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-1")
	rec := serve(e, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "unexpected error")

	entries := logs.FilterMessage("Panic recovered during request processing").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "test panic message", fields["panic_value"])
	assert.Equal(t, "string", fields["panic_type"])
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, anonymous, fields["user_id"])
	assert.Contains(t, fields["stack_trace"], "panic_recovery")
}

func TestRequestIDMiddleware(t *testing.T) {
	e := echo.New()
	e.Use(RequestIDMiddleware())
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, c.Get("request_id").(string))
	})

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := rec.Header().Get(echo.HeaderXRequestID)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
	assert.Equal(t, generated, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRequestID, "given")
	assert.Equal(t, "given", serve(e, req).Header().Get(echo.HeaderXRequestID))
}

func TestRateLimiterMiddleware(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}

	e := echo.New()
	e.POST("/login", okHandler, RateLimiterMiddleware(RateLimiterConfig{
		Redis:  rdb,
		Scope:  "login",
		Limit:  2,
		Period: time.Minute,
	}))

	newReq := func(ip string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.Header.Set(echo.HeaderXRealIP, ip)
		return req
	}

	assert.Equal(t, http.StatusOK, serve(e, newReq("10.0.0.1")).Code)
	rec := serve(e, newReq("10.0.0.1"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	rec = serve(e, newReq("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))

	// other clients have their own budget
	assert.Equal(t, http.StatusOK, serve(e, newReq("10.0.0.2")).Code)

	mr.FastForward(time.Minute + time.Second)
	assert.Equal(t, http.StatusOK, serve(e, newReq("10.0.0.1")).Code)
}

func TestRateLimiterMiddleware_FailsOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})}
	mr.Close()

	e := echo.New()
	e.POST("/login", okHandler, RateLimiterMiddleware(RateLimiterConfig{Redis: rdb, Scope: "login", Limit: 1, Period: time.Minute}))

	assert.Equal(t, http.StatusOK, serve(e, httptest.NewRequest(http.MethodPost, "/login", nil)).Code)
}
