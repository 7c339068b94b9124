package usecase

import (
	"time"

	"github.com/troublescope/github2gram/config"
	"github.com/troublescope/github2gram/internal/notifier"
	"github.com/troublescope/github2gram/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	WebhookUsecaseInterface
	HealthUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, sink notifier.Notifier, cfg *config.Config, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, sink, cfg, timeout)
}
