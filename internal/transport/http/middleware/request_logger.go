// Package middleware contains HTTP middlewares for delivery.
package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequestLogger logs HTTP requests with method, path, status and duration.
// Health and metrics probes are demoted to debug to keep the log readable.
func RequestLogger(log *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		dur := time.Since(start)
		reqID, _ := c.Locals("requestid").(string)
		if reqID == "" {
			reqID = c.Get(fiber.HeaderXRequestID)
		}

		logFn := log.Infow
		if path := c.Path(); strings.HasSuffix(path, "healthz") || strings.HasSuffix(path, "readyz") || strings.HasSuffix(path, "metrics") {
			logFn = log.Debugw
		}
		logFn("http",
			"method", c.Method(),
			"path", c.OriginalURL(),
			"status", c.Response().StatusCode(),
			"duration_ms", float64(dur.Microseconds())/1000.0,
			"bytes_in", len(c.Body()),
			"request_id", reqID,
		)
		return err
	}
}
