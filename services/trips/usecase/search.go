package usecase

import (
	"context"
	"sort"

	"github.com/viajemos/viajemos/internal/pkg/logger"
	"github.com/viajemos/viajemos/internal/pkg/matching"
	"github.com/viajemos/viajemos/internal/pkg/models"
)

// SearchTrips returns the active future trips matching criteria, soonest
// departure first
func (uc *TripUC) SearchTrips(ctx context.Context, criteria matching.Criteria) ([]models.Trip, error) {
	candidates, err := uc.activeTrips(ctx)
	if err != nil {
		return nil, err
	}

	// cached candidates may have departed since they were stored
	now := uc.now()
	upcoming := make([]models.Trip, 0, len(candidates))
	for _, t := range candidates {
		if t.Status == models.TripStatusActive && t.DepartureAt.After(now) {
			upcoming = append(upcoming, t)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DepartureAt.Before(upcoming[j].DepartureAt)
	})
	return matching.Filter(upcoming, criteria, uc.loc), nil
}

func (uc *TripUC) activeTrips(ctx context.Context) ([]models.Trip, error) {
	cached, ok, err := uc.tripRepo.GetCachedActiveTrips(ctx)
	if err != nil {
		logger.WarnCtx(ctx, "Search cache unavailable, reading from database", logger.Err(err))
	}
	if ok {
		return cached, nil
	}

	active, err := uc.tripRepo.ListTripsByStatus(ctx, []models.TripStatus{models.TripStatusActive}, uc.now())
	if err != nil {
		return nil, err
	}
	if err := uc.tripRepo.CacheActiveTrips(ctx, active); err != nil {
		logger.WarnCtx(ctx, "Failed to cache search candidates", logger.Err(err))
	}
	return active, nil
}
