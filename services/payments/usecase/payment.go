package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/viajemos/viajemos/internal/pkg/logger"
	"github.com/viajemos/viajemos/internal/pkg/models"
	"github.com/viajemos/viajemos/services/payments"
)

const defaultCurrency = "ARS"

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", payments.ErrInvalidInput, fmt.Sprintf(format, args...))
}

func normalizeItems(items []models.PreferenceItem) ([]models.PreferenceItem, error) {
	if len(items) == 0 {
		return nil, invalid("at least one item is required")
	}

	out := make([]models.PreferenceItem, 0, len(items))
	for i, item := range items {
		item.Title = strings.TrimSpace(item.Title)
		switch {
		case item.Title == "":
			return nil, invalid("item %d: title is required", i)
		case item.Quantity <= 0:
			return nil, invalid("item %d: quantity must be positive", i)
		case item.UnitPrice <= 0:
			return nil, invalid("item %d: unit_price must be positive", i)
		}
		if item.CurrencyID == "" {
			item.CurrencyID = defaultCurrency
		}
		out = append(out, item)
	}
	return out, nil
}

// CreatePreference validates the checkout items and forwards them to the
// provider. The sandbox checkout URL is returned when Payments.Sandbox is set.
func (uc *PaymentUC) CreatePreference(ctx context.Context, req *models.PreferenceRequest) (*models.PreferenceResponse, error) {
	if req == nil {
		return nil, invalid("request is required")
	}
	items, err := normalizeItems(req.Items)
	if err != nil {
		return nil, err
	}

	resp, err := uc.paymentGW.CreatePreference(ctx, &models.ProviderPreference{
		Items:             items,
		Payer:             req.Payer,
		ExternalReference: req.ExternalReference,
		NotificationURL:   uc.cfg.Payments.NotificationURL,
	})
	if err != nil {
		return nil, err
	}

	initPoint := resp.InitPoint
	if uc.cfg.Payments.Sandbox && resp.SandboxInitPoint != "" {
		initPoint = resp.SandboxInitPoint
	}

	logger.InfoCtx(ctx, "Payment preference created",
		logger.String("preference_id", resp.ID),
		logger.String("external_reference", req.ExternalReference),
		logger.Int("items", len(items)))
	return &models.PreferenceResponse{ID: resp.ID, InitPoint: initPoint}, nil
}

// HandleNotification stores a provider notification and forwards it to the
// notifications topic. Failures are logged and never surface to the
// provider.
func (uc *PaymentUC) HandleNotification(ctx context.Context, notification *models.PaymentNotification) error {
	if notification.ID == "" {
		notification.ID = uuid.NewString()
	}
	if notification.ReceivedAt.IsZero() {
		notification.ReceivedAt = uc.now()
	}

	logger.InfoCtx(ctx, "Payment notification received",
		logger.String("notification_id", notification.ID),
		logger.String("topic", notification.Topic),
		logger.String("resource_id", notification.ResourceID))

	var firstErr error
	if err := uc.paymentRepo.SaveNotification(ctx, notification); err != nil {
		logger.ErrorCtx(ctx, "Failed to store payment notification", logger.Err(err))
		firstErr = err
	}
	if err := uc.paymentGW.PublishNotification(ctx, notification); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish payment notification", logger.Err(err))
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
