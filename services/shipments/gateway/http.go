package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/viajemos/viajemos/internal/pkg/circuitbreaker"
	httpclient "github.com/viajemos/viajemos/internal/pkg/http"
	"github.com/viajemos/viajemos/internal/pkg/logger"
	"github.com/viajemos/viajemos/internal/pkg/matching"
	"github.com/viajemos/viajemos/internal/pkg/models"
	"github.com/viajemos/viajemos/services/shipments"
)

type tripResponse struct {
	Data *models.Trip `json:"data"`
}

type tripListResponse struct {
	Data []models.Trip `json:"data"`
}

// GetTrip reads a trip from the trips service
func (g *ShipmentGW) GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error) {
	var resp tripResponse
	if err := g.tripsClient.GetJSON(ctx, "/trips/"+tripID.String(), &resp); err != nil {
		if httpclient.StatusCode(err) == http.StatusNotFound {
			return nil, shipments.ErrTripNotFound
		}
		return nil, g.unavailable(ctx, "get trip", err)
	}
	if resp.Data == nil {
		return nil, shipments.ErrTripNotFound
	}
	return resp.Data, nil
}

// SearchTrips runs criteria against the trips service search
func (g *ShipmentGW) SearchTrips(ctx context.Context, criteria matching.Criteria) ([]models.Trip, error) {
	path := "/trips/search"
	if query := criteria.Values().Encode(); query != "" {
		path += "?" + query
	}

	var resp tripListResponse
	if err := g.tripsClient.GetJSON(ctx, path, &resp); err != nil {
		return nil, g.unavailable(ctx, "search trips", err)
	}
	if resp.Data == nil {
		return []models.Trip{}, nil
	}
	return resp.Data, nil
}

func (g *ShipmentGW) unavailable(ctx context.Context, action string, err error) error {
	logger.ErrorCtx(ctx, "Trips service call failed",
		logger.String("action", action),
		logger.String("breaker_state", g.tripsClient.BreakerState()),
		logger.Err(err))
	if errors.Is(err, circuitbreaker.ErrCircuitBreakerOpen) || httpclient.StatusCode(err) == 0 ||
		httpclient.StatusCode(err) >= http.StatusInternalServerError {
		return fmt.Errorf("%w: %v", shipments.ErrTripsUnavailable, err)
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}
