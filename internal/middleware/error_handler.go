package middleware

import (
	"github.com/NiraJ01010101/chaiBackend/dto"
	"github.com/NiraJ01010101/chaiBackend/internal/apperr"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ErrorHandler writes every handler error as the failure envelope. Internal
// errors are logged with their cause and reported with a generic message.
func ErrorHandler(c *fiber.Ctx, err error) error {
	ae := apperr.From(err)
	status := apperr.StatusOf(err)

	entry := logrus.WithFields(logrus.Fields{
		"method":    c.Method(),
		"path":      c.Path(),
		"status":    status,
		"requestId": c.Locals("requestid"),
	})
	if status >= fiber.StatusInternalServerError {
		entry.WithError(err).Error("request failed")
	} else {
		entry.WithField("reason", ae.Message).Debug("request rejected")
	}

	return c.Status(status).JSON(dto.ErrorResponse{
		StatusCode: status,
		Success:    false,
		Message:    ae.Message,
	})
}
