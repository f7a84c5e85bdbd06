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
	"github.com/viajemos/viajemos/internal/pkg/models"
	"github.com/viajemos/viajemos/services/trips"
)

type vehicleStatusResponse struct {
	Data *models.VehicleStatus `json:"data"`
}

// GetVehicleStatus asks the users service for a vehicle's owner and
// verification status
func (g *TripGW) GetVehicleStatus(ctx context.Context, vehicleID uuid.UUID) (*models.VehicleStatus, error) {
	endpoint := fmt.Sprintf("/internal/vehicles/%s", vehicleID)

	var resp vehicleStatusResponse
	if err := g.usersClient.GetJSON(ctx, endpoint, &resp); err != nil {
		if httpclient.StatusCode(err) == http.StatusNotFound {
			return nil, trips.ErrVehicleNotFound
		}
		logger.ErrorCtx(ctx, "Failed to get vehicle status",
			logger.String("vehicle_id", vehicleID.String()),
			logger.String("breaker_state", g.usersClient.BreakerState()),
			logger.Err(err))
		if errors.Is(err, circuitbreaker.ErrCircuitBreakerOpen) || httpclient.StatusCode(err) == 0 ||
			httpclient.StatusCode(err) >= http.StatusInternalServerError {
			return nil, fmt.Errorf("%w: %v", trips.ErrUsersUnavailable, err)
		}
		return nil, fmt.Errorf("failed to get vehicle status: %w", err)
	}
	if resp.Data == nil {
		return nil, trips.ErrVehicleNotFound
	}
	return resp.Data, nil
}
