package usecase

import (
	"context"

	"github.com/troublescope/github2gram/internal/entities"
)

// WebhookUsecaseInterface abstracts webhook processing for the delivery layer.
type WebhookUsecaseInterface interface {
	ProcessWebhook(ctx context.Context, delivery entities.WebhookDelivery) (entities.ProcessResult, error)
}

// HealthUsecaseInterface abstracts readiness checks.
type HealthUsecaseInterface interface {
	Readiness(ctx context.Context) error
}
