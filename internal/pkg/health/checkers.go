package health

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/viajemos/viajemos/internal/pkg/database"
	"github.com/viajemos/viajemos/internal/pkg/logger"
	"github.com/viajemos/viajemos/internal/pkg/nats"
	"github.com/viajemos/viajemos/internal/pkg/nsq"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// HealthChecker defines the interface for health checking dependencies
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// CheckerFunc adapts a function to HealthChecker
type CheckerFunc func(ctx context.Context) error

func (f CheckerFunc) CheckHealth(ctx context.Context) error { return f(ctx) }

// NewPostgresHealthChecker checks PostgreSQL connection health
func NewPostgresHealthChecker(client *database.PostgresClient) HealthChecker {
	return CheckerFunc(func(ctx context.Context) error {
		if client == nil {
			return nil
		}
		return client.Ping(ctx)
	})
}

// NewRedisHealthChecker checks Redis connection health
func NewRedisHealthChecker(client *database.RedisClient) HealthChecker {
	return CheckerFunc(func(ctx context.Context) error {
		if client == nil {
			return nil
		}
		return client.Ping(ctx)
	})
}

// NewMongoHealthChecker checks MongoDB connection health
func NewMongoHealthChecker(client *database.MongoClient) HealthChecker {
	return CheckerFunc(func(ctx context.Context) error {
		if client == nil {
			return nil
		}
		return client.Ping(ctx)
	})
}

// NewNATSHealthChecker checks NATS connection health
func NewNATSHealthChecker(client *nats.Client) HealthChecker {
	return CheckerFunc(func(ctx context.Context) error {
		if client == nil {
			return nil
		}
		if !client.Connected() {
			return errors.New("NATS not connected")
		}
		return nil
	})
}

// NewNSQHealthChecker checks the nsqd the producer publishes to
func NewNSQHealthChecker(producer *nsq.Producer) HealthChecker {
	return CheckerFunc(func(ctx context.Context) error {
		if producer == nil {
			return nil
		}
		return producer.Ping()
	})
}

// HealthService manages health checks for multiple dependencies
type HealthService struct {
	mu       sync.RWMutex
	checkers map[string]HealthChecker
}

// NewHealthService creates a new health service
func NewHealthService() *HealthService {
	return &HealthService{checkers: make(map[string]HealthChecker)}
}

// AddChecker registers a health checker for a dependency
func (h *HealthService) AddChecker(name string, checker HealthChecker) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checkers[name] = checker
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status       string                    `json:"status"`
	Timestamp    time.Time                 `json:"timestamp"`
	Service      string                    `json:"service"`
	Version      string                    `json:"version,omitempty"`
	Dependencies map[string]DependencyInfo `json:"dependencies"`
}

// DependencyInfo represents health info for a dependency
type DependencyInfo struct {
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
	Latency string `json:"latency"`
}

// CheckAllHealth runs every registered checker concurrently
func (h *HealthService) CheckAllHealth(ctx context.Context) HealthResponse {
	h.mu.RLock()
	names := make([]string, 0, len(h.checkers))
	for name := range h.checkers {
		names = append(names, name)
	}
	h.mu.RUnlock()
	sort.Strings(names)

	results := make([]DependencyInfo, len(names))
	var wg sync.WaitGroup
	for i, name := range names {
		h.mu.RLock()
		checker := h.checkers[name]
		h.mu.RUnlock()

		wg.Add(1)
		go func(i int, name string, checker HealthChecker) {
			defer wg.Done()
			start := time.Now()
			err := checker.CheckHealth(ctx)
			info := DependencyInfo{Status: StatusHealthy, Latency: time.Since(start).String()}
			if err != nil {
				logger.WarnCtx(ctx, "Health check failed",
					logger.String("dependency", name),
					logger.Err(err))
				info.Status = StatusUnhealthy
				info.Error = err.Error()
			}
			results[i] = info
		}(i, name, checker)
	}
	wg.Wait()

	response := HealthResponse{
		Status:       StatusHealthy,
		Timestamp:    time.Now(),
		Dependencies: make(map[string]DependencyInfo, len(names)),
	}
	for i, name := range names {
		response.Dependencies[name] = results[i]
		if results[i].Status == StatusUnhealthy {
			response.Status = StatusUnhealthy
		}
	}
	return response
}
