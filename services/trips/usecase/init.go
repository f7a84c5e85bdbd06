package usecase

import (
	"time"

	"github.com/viajemos/viajemos/internal/pkg/logger"
	"github.com/viajemos/viajemos/internal/pkg/models"
	"github.com/viajemos/viajemos/services/trips"
)

// TripUC implements trips.TripUC
type TripUC struct {
	tripRepo trips.TripRepo
	tripGW   trips.TripGW
	cfg      *models.Config
	loc      *time.Location
	now      func() time.Time
}

// NewTripUC creates a new trip usecase instance
func NewTripUC(tripRepo trips.TripRepo, tripGW trips.TripGW, cfg *models.Config) *TripUC {
	loc, err := models.LoadLocation(cfg.App.Timezone)
	if err != nil {
		logger.Warn("Search dates fall back to UTC", logger.Err(err))
	}

	return &TripUC{
		tripRepo: tripRepo,
		tripGW:   tripGW,
		cfg:      cfg,
		loc:      loc,
		now:      models.Now,
	}
}
