package payments

import (
	"context"

	"github.com/viajemos/viajemos/internal/pkg/models"
)

// PaymentUC defines the payment relay logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/viajemos/viajemos/services/payments PaymentUC
type PaymentUC interface {
	CreatePreference(ctx context.Context, req *models.PreferenceRequest) (*models.PreferenceResponse, error)
	HandleNotification(ctx context.Context, notification *models.PaymentNotification) error
}
