package handlers_fiber

import (
	"net/http"

	"github.com/troublescope/github2gram/internal/entities"
	"github.com/troublescope/github2gram/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GitHub webhook headers.
const (
	headerEvent     = "X-GitHub-Event"
	headerSignature = "X-Hub-Signature-256"
	headerDelivery  = "X-GitHub-Delivery"
)

// PostWebhookGithub handles one GitHub webhook delivery. The raw body bytes
// are handed to the core untouched: re-serializing JSON before hashing would
// break signature verification on key order or whitespace differences.
func (h *Handler) PostWebhookGithub(c *fiber.Ctx) error {
	delivery := entities.WebhookDelivery{
		EventType:  c.Get(headerEvent),
		Signature:  c.Get(headerSignature),
		DeliveryID: c.Get(headerDelivery),
		Body:       c.Body(),
	}

	res, err := h.uc.ProcessWebhook(c.Context(), delivery)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIWebhookResponse(res))
}
