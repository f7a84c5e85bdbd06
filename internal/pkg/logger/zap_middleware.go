package logger

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
)

const anonymous = "anonymous"

// ZapEchoMiddleware logs every echo request through logger
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			txn := newrelic.FromContext(c.Request().Context())
			start := time.Now()

			err := next(c)
			if err != nil {
				// let echo render the error so the logged status is the real one
				c.Error(err)
			}

			userID := anonymous
			if v := c.Get("user_id"); v != nil {
				userID = fmt.Sprintf("%v", v)
			}
			req := HTTPRequest{
				Method:    c.Request().Method,
				Path:      withQuery(c.Request().URL.Path, c.Request().URL.RawQuery),
				ClientIP:  c.RealIP(),
				UserID:    userID,
				RequestID: c.Response().Header().Get(echo.HeaderXRequestID),
				Status:    c.Response().Status,
				Latency:   time.Since(start),
				Err:       err,
			}
			annotate(txn, req)
			logger.LogHTTPRequest(txn, req)
			return nil
		}
	}
}

// ZapGinMiddleware is the gin counterpart of ZapEchoMiddleware
func ZapGinMiddleware(logger *ZapLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		txn := nrgin.Transaction(c)
		var err error
		if len(c.Errors) > 0 {
			err = c.Errors.Last().Err
		}
		req := HTTPRequest{
			Method:    c.Request.Method,
			Path:      withQuery(c.Request.URL.Path, c.Request.URL.RawQuery),
			ClientIP:  c.ClientIP(),
			UserID:    anonymous,
			RequestID: c.Writer.Header().Get("X-Request-ID"),
			Status:    c.Writer.Status(),
			Latency:   time.Since(start),
			Err:       err,
		}
		annotate(txn, req)
		logger.LogHTTPRequest(txn, req)
	}
}

func annotate(txn *newrelic.Transaction, r HTTPRequest) {
	if txn == nil {
		return
	}
	txn.AddAttribute("user_id", r.UserID)
	txn.AddAttribute("request_id", r.RequestID)
	txn.AddAttribute("response_time_ms", r.Latency.Milliseconds())
	if r.Err != nil {
		txn.NoticeError(r.Err)
	}
}

func withQuery(path, raw string) string {
	if raw == "" {
		return path
	}
	return path + "?" + raw
}
