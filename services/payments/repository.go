package payments

import (
	"context"

	"github.com/viajemos/viajemos/internal/pkg/models"
)

// PaymentRepo stores raw provider notifications
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/viajemos/viajemos/services/payments PaymentRepo
type PaymentRepo interface {
	SaveNotification(ctx context.Context, notification *models.PaymentNotification) error
}
