package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs one line per request after the handler chain, including
// the id set by the requestid middleware.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		fields := logrus.Fields{
			"method":    c.Method(),
			"path":      c.Path(),
			"status":    c.Response().StatusCode(),
			"latency":   time.Since(start).String(),
			"requestId": c.Locals("requestid"),
		}
		if uid, ok := c.Locals(localUserID).(string); ok {
			fields["userId"] = uid
		}
		logrus.WithFields(fields).Info("request")
		return err
	}
}
