package entities

// Button is one clickable link attached to a chat message.
type Button struct {
	Label string
	URL   string
}

// ButtonLayout is a grid of link buttons, row-major.
type ButtonLayout struct {
	Rows [][]Button
}

// Message is a formatted notification ready for delivery.
type Message struct {
	Text    string
	Buttons *ButtonLayout
}

// WebhookDelivery is one inbound webhook request as seen by the core:
// the exact raw body bytes plus the relevant headers.
type WebhookDelivery struct {
	EventType  string
	Signature  string
	DeliveryID string
	Body       []byte
}

// ProcessResult is the outcome of processing one delivery. Delivery failures
// surface here as Success=false, never as an error.
type ProcessResult struct {
	Success   bool
	Message   string
	EventType string
}
