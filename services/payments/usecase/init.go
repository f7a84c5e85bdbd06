package usecase

import (
	"time"

	"github.com/viajemos/viajemos/internal/pkg/models"
	"github.com/viajemos/viajemos/services/payments"
)

// PaymentUC implements payments.PaymentUC
type PaymentUC struct {
	paymentRepo payments.PaymentRepo
	paymentGW   payments.PaymentGW
	cfg         *models.Config
	now         func() time.Time
}

// NewPaymentUC creates a new payment usecase instance
func NewPaymentUC(paymentRepo payments.PaymentRepo, paymentGW payments.PaymentGW, cfg *models.Config) *PaymentUC {
	return &PaymentUC{
		paymentRepo: paymentRepo,
		paymentGW:   paymentGW,
		cfg:         cfg,
		now:         models.Now,
	}
}
