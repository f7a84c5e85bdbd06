package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/viajemos/viajemos/internal/pkg/circuitbreaker"
	httpclient "github.com/viajemos/viajemos/internal/pkg/http"
	"github.com/viajemos/viajemos/internal/pkg/logger"
	"github.com/viajemos/viajemos/internal/pkg/models"
	"github.com/viajemos/viajemos/services/payments"
)

const preferencesPath = "/checkout/preferences"

// CreatePreference creates a checkout preference at the provider
func (g *PaymentGW) CreatePreference(ctx context.Context, pref *models.ProviderPreference) (*models.ProviderPreferenceResponse, error) {
	var resp models.ProviderPreferenceResponse
	if err := g.providerClient.PostJSON(ctx, preferencesPath, pref, &resp); err != nil {
		status := httpclient.StatusCode(err)
		logger.ErrorCtx(ctx, "Payment provider call failed",
			logger.Int("status", status),
			logger.String("breaker_state", g.providerClient.BreakerState()),
			logger.Err(err))

		if status >= http.StatusBadRequest && status < http.StatusInternalServerError {
			return nil, fmt.Errorf("%w: %v", payments.ErrProviderRejected, err)
		}
		if errors.Is(err, circuitbreaker.ErrCircuitBreakerOpen) || status == 0 || status >= http.StatusInternalServerError {
			return nil, fmt.Errorf("%w: %v", payments.ErrProviderUnavailable, err)
		}
		return nil, fmt.Errorf("failed to create preference: %w", err)
	}
	if resp.ID == "" {
		return nil, fmt.Errorf("%w: empty preference id", payments.ErrProviderUnavailable)
	}
	return &resp, nil
}
