// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"github.com/troublescope/github2gram/internal/api"
	"github.com/troublescope/github2gram/internal/entities"
)

// ToAPIWebhookResponse maps a processing result to the transport model.
func ToAPIWebhookResponse(res entities.ProcessResult) api.WebhookResponse {
	return api.WebhookResponse{
		Success:   res.Success,
		Message:   res.Message,
		EventType: res.EventType,
	}
}
