// Package domain contains the webhook processing pipeline: signature
// verification, event normalization, message formatting and chat routing.
package domain

import (
	"context"
	"time"

	"github.com/troublescope/github2gram/config"
	"github.com/troublescope/github2gram/internal/notifier"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	log     *zap.SugaredLogger
	sink    notifier.Notifier
	secret  string
	routes  *chatResolver
	timeout time.Duration
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	sink notifier.Notifier,
	cfg *config.Config,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		log:     log,
		sink:    sink,
		secret:  cfg.Webhook.Secret,
		routes:  newChatResolver(cfg.Routing.Overrides, cfg.Telegram.DefaultChatID),
		timeout: timeout,
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
