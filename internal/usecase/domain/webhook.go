package domain

import (
	"context"
	"time"

	"github.com/troublescope/github2gram/internal/entities"
	"github.com/troublescope/github2gram/internal/metrics"
)

const filteredMessage = "Event processed (filtered out)"

// ProcessWebhook runs one delivery through the pipeline: verify → normalize →
// format → resolve chat → send. Signature failure is the only error return;
// filtered events and failed sends are ordinary results.
func (u *Usecase) ProcessWebhook(ctx context.Context, d entities.WebhookDelivery) (entities.ProcessResult, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if !u.verifySignature(d.Body, d.Signature) {
		u.log.Warnw("webhook signature verification failed",
			"event", d.EventType, "delivery_id", d.DeliveryID)
		metrics.Deliveries.WithLabelValues(d.EventType, "rejected").Inc()
		return entities.ProcessResult{}, entities.ErrInvalidSignature
	}

	summary := normalizeEvent(d.EventType, d.Body)
	if summary == nil {
		u.log.Debugw("event filtered out",
			"event", d.EventType, "delivery_id", d.DeliveryID)
		metrics.Deliveries.WithLabelValues(d.EventType, "filtered").Inc()
		return entities.ProcessResult{
			Success:   true,
			Message:   filteredMessage,
			EventType: d.EventType,
		}, nil
	}

	text, buttons := formatSummary(summary)
	chatID := u.routes.Resolve(summary.Repo())

	start := time.Now()
	err := u.sink.Send(ctx, chatID, entities.Message{Text: text, Buttons: buttons})
	metrics.SendDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		u.log.Errorw("notification delivery failed",
			"event", d.EventType, "repo", summary.Repo(), "chat_id", chatID, "error", err)
		metrics.Deliveries.WithLabelValues(d.EventType, "failed").Inc()
		metrics.Sends.WithLabelValues("error").Inc()
		return entities.ProcessResult{
			Success:   false,
			Message:   "Failed to send notification",
			EventType: d.EventType,
		}, nil
	}

	u.log.Infow("notification sent",
		"event", d.EventType, "repo", summary.Repo(), "chat_id", chatID)
	metrics.Deliveries.WithLabelValues(d.EventType, "delivered").Inc()
	metrics.Sends.WithLabelValues("ok").Inc()
	return entities.ProcessResult{
		Success:   true,
		Message:   "Notification sent",
		EventType: d.EventType,
	}, nil
}

// Readiness reports whether the messaging API is reachable with the
// configured credential.
func (u *Usecase) Readiness(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.sink.Probe(ctx)
}
