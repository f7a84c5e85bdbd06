package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/labstack/echo/v4"
)

const (
	detailedTimeout  = 5 * time.Second
	readinessTimeout = 3 * time.Second
)

// BuildInfo contains information about the build
type BuildInfo struct {
	Version     string    `json:"version"`
	GitCommit   string    `json:"git_commit"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

func buildInfo(serviceName, version string) BuildInfo {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	info := BuildInfo{
		Version:     version,
		GitCommit:   "unknown",
		ServiceName: serviceName,
		GoVersion:   runtime.Version(),
		Hostname:    hostname,
	}
	if gitCommit := os.Getenv("GIT_COMMIT"); gitCommit != "" {
		info.GitCommit = gitCommit
	}
	return info
}

// RegisterEchoEndpoints registers /ping and the /health group on an echo server
func RegisterEchoEndpoints(e *echo.Echo, serviceName, version string, hs *HealthService) {
	info := buildInfo(serviceName, version)

	e.GET("/ping", func(c echo.Context) error {
		out := info
		out.ServerTime = time.Now()
		return c.JSON(http.StatusOK, out)
	})

	g := e.Group("/health")
	g.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, basic(serviceName))
	})
	g.GET("/detailed", func(c echo.Context) error {
		status, body := detailed(c.Request().Context(), serviceName, version, hs)
		return c.JSON(status, body)
	})
	g.GET("/ready", func(c echo.Context) error {
		status, body := ready(c.Request().Context(), serviceName, hs)
		return c.JSON(status, body)
	})
	g.GET("/live", func(c echo.Context) error {
		return c.JSON(http.StatusOK, live(serviceName))
	})
}

// RegisterGinEndpoints is the gin counterpart of RegisterEchoEndpoints
func RegisterGinEndpoints(r gin.IRouter, serviceName, version string, hs *HealthService) {
	info := buildInfo(serviceName, version)

	r.GET("/ping", func(c *gin.Context) {
		out := info
		out.ServerTime = time.Now()
		c.JSON(http.StatusOK, out)
	})

	g := r.Group("/health")
	g.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, basic(serviceName))
	})
	g.GET("/detailed", func(c *gin.Context) {
		c.JSON(detailed(c.Request.Context(), serviceName, version, hs))
	})
	g.GET("/ready", func(c *gin.Context) {
		c.JSON(ready(c.Request.Context(), serviceName, hs))
	})
	g.GET("/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, live(serviceName))
	})
}

func basic(serviceName string) map[string]interface{} {
	return map[string]interface{}{
		"status":    "ok",
		"service":   serviceName,
		"timestamp": time.Now(),
	}
}

func live(serviceName string) map[string]interface{} {
	return map[string]interface{}{
		"status":  "alive",
		"service": serviceName,
	}
}

func detailed(ctx context.Context, serviceName, version string, hs *HealthService) (int, interface{}) {
	ctx, cancel := context.WithTimeout(ctx, detailedTimeout)
	defer cancel()

	response := hs.CheckAllHealth(ctx)
	response.Service = serviceName
	response.Version = version

	if response.Status == StatusUnhealthy {
		return http.StatusServiceUnavailable, response
	}
	return http.StatusOK, response
}

func ready(ctx context.Context, serviceName string, hs *HealthService) (int, interface{}) {
	ctx, cancel := context.WithTimeout(ctx, readinessTimeout)
	defer cancel()

	response := hs.CheckAllHealth(ctx)
	response.Service = serviceName
	if response.Status == StatusUnhealthy {
		return http.StatusServiceUnavailable, response
	}
	return http.StatusOK, map[string]interface{}{
		"status":  "ready",
		"service": serviceName,
	}
}
