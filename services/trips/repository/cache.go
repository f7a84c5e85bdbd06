package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/viajemos/viajemos/internal/pkg/constants"
	"github.com/viajemos/viajemos/internal/pkg/database"
	"github.com/viajemos/viajemos/internal/pkg/models"
)

// GetCachedActiveTrips returns the cached search candidates. The bool is
// false on a cache miss.
func (r *TripRepo) GetCachedActiveTrips(ctx context.Context) ([]models.Trip, bool, error) {
	raw, err := r.redisClient.Get(ctx, constants.KeySearchActiveTrips)
	if err != nil {
		if errors.Is(err, database.ErrCacheMiss) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read trip cache: %w", err)
	}

	var cached []models.Trip
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		return nil, false, fmt.Errorf("failed to decode trip cache: %w", err)
	}
	return cached, true, nil
}

// CacheActiveTrips stores the search candidates for Search.CacheTTL
func (r *TripRepo) CacheActiveTrips(ctx context.Context, trips []models.Trip) error {
	data, err := json.Marshal(trips)
	if err != nil {
		return fmt.Errorf("failed to encode trip cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, constants.KeySearchActiveTrips, data, r.cfg.Search.CacheTTL); err != nil {
		return fmt.Errorf("failed to write trip cache: %w", err)
	}
	return nil
}

// InvalidateActiveTrips drops the cached search candidates
func (r *TripRepo) InvalidateActiveTrips(ctx context.Context) error {
	if err := r.redisClient.Delete(ctx, constants.KeySearchActiveTrips); err != nil {
		return fmt.Errorf("failed to invalidate trip cache: %w", err)
	}
	return nil
}
