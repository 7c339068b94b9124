// Package api contains transport DTO models for the HTTP surface.
package api

// WebhookResponse is the JSON body returned for every webhook delivery.
type WebhookResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	EventType string `json:"eventType,omitempty"`
}

// HealthResponse is the JSON body of the health endpoints.
type HealthResponse struct {
	Status string `json:"status"`
}
