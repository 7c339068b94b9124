package domain

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const signaturePrefix = "sha256="

// verifySignature checks the HMAC-SHA256 signature of a webhook delivery
// against the configured secret. The signature is expected in the form
// "sha256=<hex-encoded-hmac>" computed over the exact raw body bytes.
// It never fails open: an unconfigured secret or malformed signature is false.
func (u *Usecase) verifySignature(body []byte, signature string) bool {
	if u.secret == "" {
		u.log.Warnw("webhook secret is not configured, rejecting delivery")
		return false
	}
	if !strings.HasPrefix(signature, signaturePrefix) {
		return false
	}
	supplied := strings.TrimPrefix(signature, signaturePrefix)

	mac := hmac.New(sha256.New, []byte(u.secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	// hmac.Equal rejects length mismatches without leaking timing.
	return hmac.Equal([]byte(supplied), []byte(expected))
}
