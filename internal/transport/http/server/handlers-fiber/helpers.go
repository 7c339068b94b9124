package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/troublescope/github2gram/internal/api"
	"github.com/troublescope/github2gram/internal/entities"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	msg := "internal error"

	// Signature failure is the only error surfaced as an HTTP error status;
	// everything else in the pipeline resolves to a 200 with a success flag.
	if errors.Is(err, entities.ErrInvalidSignature) {
		status = http.StatusUnauthorized
		msg = "invalid signature"
	}

	return c.Status(status).JSON(api.WebhookResponse{
		Success: false,
		Message: msg,
	})
}
