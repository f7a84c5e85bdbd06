package payments

import (
	"context"

	"github.com/viajemos/viajemos/internal/pkg/models"
)

// PaymentGW talks to the payment provider and the notification topic
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/viajemos/viajemos/services/payments PaymentGW
type PaymentGW interface {
	CreatePreference(ctx context.Context, pref *models.ProviderPreference) (*models.ProviderPreferenceResponse, error)
	PublishNotification(ctx context.Context, notification *models.PaymentNotification) error
}
