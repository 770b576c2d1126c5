package serverutils

import (
	"errors"

	"immi-assistant-be/internal/constant"
	"immi-assistant-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware collapses every error escaping a handler into the
// public error contract: { "error": text }. Client mistakes (fiber errors,
// e.g. validation) keep their status and message; everything else, including
// all upstream failures, is surfaced as a generic 500.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) && fiberErr.Code < fiber.StatusInternalServerError {
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{
				"error": fiberErr.Message,
			})
		}

		log.Error("http", "request failed", map[string]interface{}{
			"path":  ctx.Path(),
			"error": err.Error(),
		})

		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": constant.GenericErrorMessage,
		})
	}
}
