package handlers_fiber

import (
	"net/http"

	"github.com/troublescope/github2gram/internal/api"

	"github.com/gofiber/fiber/v2"
)

// GetHealthz is the liveness endpoint.
func (h *Handler) GetHealthz(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(api.HealthResponse{Status: "ok"})
}

// GetReadyz reports readiness by probing the messaging API.
func (h *Handler) GetReadyz(c *fiber.Ctx) error {
	if err := h.uc.Readiness(c.Context()); err != nil {
		h.log.Warnw("readiness probe failed", "error", err)
		return c.Status(http.StatusServiceUnavailable).JSON(api.HealthResponse{Status: "unavailable"})
	}
	return c.Status(http.StatusOK).JSON(api.HealthResponse{Status: "ok"})
}
