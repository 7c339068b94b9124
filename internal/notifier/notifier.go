// Package notifier provides the notification sink contract and backend factory.
package notifier

import (
	"context"
	"fmt"

	"github.com/troublescope/github2gram/config"
	"github.com/troublescope/github2gram/internal/entities"
	"github.com/troublescope/github2gram/internal/notifier/telegram"

	"go.uber.org/zap"
)

// Notifier delivers formatted notifications to an already-resolved chat.
// Delivery is best-effort: a failed send is an error, never a panic, and no
// retries happen here.
type Notifier interface {
	Send(ctx context.Context, chatID string, msg entities.Message) error
	// Probe performs a lightweight identity check against the messaging API;
	// used by the readiness surface only.
	Probe(ctx context.Context) error
}

// New constructs a notifier backend by name.
func New(name string, log *zap.SugaredLogger, cfg *config.Config) (Notifier, error) {
	switch name {
	case "telegram":
		return telegram.New(log, cfg), nil
	default:
		return nil, fmt.Errorf("%w: %s", entities.ErrUnknownBackend, name)
	}
}
