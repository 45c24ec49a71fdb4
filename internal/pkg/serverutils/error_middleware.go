package serverutils

import (
	"errors"

	"ai-coach-agent-be/internal/pkg/apperror"
	"ai-coach-agent-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware translates app errors escaping a controller into
// HTTP responses. Internal causes are logged with full context and replaced
// by an opaque body; specific kinds keep their client-facing message.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{"message": fiberErr.Message})
		}

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			switch appErr.Kind {
			case apperror.KindNotFound:
				return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": appErr.Message})
			case apperror.KindConflict:
				return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"message": appErr.Message})
			case apperror.KindValidation:
				return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": appErr.Message})
			}
		}

		log.Error("HTTP", "unhandled error", map[string]interface{}{
			"path":  ctx.Path(),
			"error": err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal Server Error"})
	}
}
