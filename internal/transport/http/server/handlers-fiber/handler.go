// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/troublescope/github2gram/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the webhook and health endpoints using service layer interfaces.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP handler with service dependencies.
func NewHandler(log *zap.SugaredLogger, uc usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  uc,
	}
}

// Register attaches all routes to the fiber app.
func (h *Handler) Register(app *fiber.App) {
	app.Post("/webhook/github", h.PostWebhookGithub)
	app.Get("/healthz", h.GetHealthz)
	app.Get("/readyz", h.GetReadyz)
}
