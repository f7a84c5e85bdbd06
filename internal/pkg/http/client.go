package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/viajemos/viajemos/internal/pkg/circuitbreaker"
	"github.com/viajemos/viajemos/internal/pkg/logger"
	nrpkg "github.com/viajemos/viajemos/internal/pkg/newrelic"
	"github.com/viajemos/viajemos/internal/pkg/retry"
)

const (
	// DefaultTimeout for HTTP requests
	DefaultTimeout = 10 * time.Second
	// APIKeyHeader is the header internal routes authenticate with
	APIKeyHeader = "X-API-Key"

	maxErrorBody = 1024
)

// Config describes one downstream service
type Config struct {
	Name        string
	BaseURL     string
	Timeout     time.Duration
	APIKey      string // sent as X-API-Key
	BearerToken string // sent as Authorization: Bearer
	Retry       *retry.Config
	Breaker     *circuitbreaker.Config
}

// Client is a JSON HTTP client with retry and circuit breaker protection.
// Network errors and 5xx responses are retried and count against the
// breaker; 4xx responses are returned as *HTTPError immediately.
type Client struct {
	name       string
	baseURL    string
	apiKey     string
	bearer     string
	httpClient *http.Client
	retrier    *retry.Retrier
	breaker    *circuitbreaker.CircuitBreaker
}

// HTTPError is a non-2xx response
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error: %d %s", e.StatusCode, strings.TrimSpace(e.Body))
}

// StatusCode returns the HTTP status carried by err, or 0
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}

func transient(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode >= http.StatusInternalServerError
	}
	return !errors.Is(err, circuitbreaker.ErrCircuitBreakerOpen)
}

// NewClient creates a new HTTP client
func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	retryCfg := retry.DefaultConfig()
	if cfg.Retry != nil {
		retryCfg = *cfg.Retry
	}
	retryCfg.IsRetryable = transient

	breakerCfg := circuitbreaker.DefaultConfig(cfg.Name)
	if cfg.Breaker != nil {
		breakerCfg = *cfg.Breaker
		breakerCfg.Name = cfg.Name
	}
	breakerCfg.IsFailure = transient

	return &Client{
		name:       cfg.Name,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		bearer:     cfg.BearerToken,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		retrier:    retry.New(retryCfg),
		breaker:    circuitbreaker.New(breakerCfg),
	}
}

// GetJSON performs a GET and decodes the JSON response into out
func (c *Client) GetJSON(ctx context.Context, path string, out interface{}) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

// PostJSON posts body as JSON and decodes the response into out
func (c *Client) PostJSON(ctx context.Context, path string, body, out interface{}) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

// Do sends one logical request. out may be nil.
func (c *Client) Do(ctx context.Context, method, path string, body, out interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
	}
	url := c.baseURL + path

	var respBody []byte
	err := c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.retrier.Execute(ctx, func(ctx context.Context) error {
			var err error
			respBody, err = c.roundTrip(ctx, method, url, payload)
			return err
		})
	})
	if err != nil {
		logger.WarnCtx(ctx, "Downstream request failed",
			logger.String("service", c.name),
			logger.String("method", method),
			logger.String("url", url),
			logger.Err(err))
		return err
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode %s response: %w", c.name, err)
		}
	}
	return nil
}

func (c *Client) roundTrip(ctx context.Context, method, url string, payload []byte) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set(APIKeyHeader, c.apiKey)
	}
	if c.bearer != "" {
		req.Header.Set("Authorization", "Bearer "+c.bearer)
	}

	resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*http.Response, error) {
		return c.httpClient.Do(req)
	})
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", c.name, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", c.name, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		if len(data) > maxErrorBody {
			data = data[:maxErrorBody]
		}
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: string(data)}
	}
	return data, nil
}

// BreakerState reports the circuit state, for health output
func (c *Client) BreakerState() string {
	return c.breaker.State().String()
}
