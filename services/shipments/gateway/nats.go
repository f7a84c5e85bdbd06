package gateway

import (
	"context"

	"github.com/viajemos/viajemos/internal/pkg/constants"
	"github.com/viajemos/viajemos/internal/pkg/models"
)

// PublishShipmentUpdated publishes a shipment.updated event
func (g *ShipmentGW) PublishShipmentUpdated(ctx context.Context, shipment *models.Shipment) error {
	event := models.ShipmentEvent{
		ShipmentID: shipment.ID.String(),
		SenderID:   shipment.SenderID.String(),
		Status:     shipment.Status,
		Timestamp:  shipment.UpdatedAt,
	}
	if shipment.DriverID != nil {
		event.DriverID = shipment.DriverID.String()
	}
	if shipment.TripID != nil {
		event.TripID = shipment.TripID.String()
	}
	return g.natsClient.PublishJSON(constants.SubjectShipmentUpdated, event)
}
