// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidSignature signals a webhook delivery that failed HMAC verification.
	ErrInvalidSignature = errors.New("invalid signature")
	// ErrNotConfigured signals a missing credential at the point of use.
	ErrNotConfigured = errors.New("not configured")
	// ErrUnknownBackend signals an unrecognized notifier backend name.
	ErrUnknownBackend = errors.New("unknown notifier backend")
)
