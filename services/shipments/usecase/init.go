package usecase

import (
	"time"

	"github.com/viajemos/viajemos/internal/pkg/models"
	"github.com/viajemos/viajemos/services/shipments"
)

const (
	pinLength             = 4
	defaultMaxPINAttempts = 5
)

// ShipmentUC implements shipments.ShipmentUC
type ShipmentUC struct {
	shipmentRepo   shipments.ShipmentRepo
	shipmentGW     shipments.ShipmentGW
	cfg            *models.Config
	maxPINAttempts int
	now            func() time.Time
}

// NewShipmentUC creates a new shipment usecase instance
func NewShipmentUC(shipmentRepo shipments.ShipmentRepo, shipmentGW shipments.ShipmentGW, cfg *models.Config) *ShipmentUC {
	maxAttempts := cfg.Shipments.MaxPINAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxPINAttempts
	}
	return &ShipmentUC{
		shipmentRepo:   shipmentRepo,
		shipmentGW:     shipmentGW,
		cfg:            cfg,
		maxPINAttempts: maxAttempts,
		now:            models.Now,
	}
}
