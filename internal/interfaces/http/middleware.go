package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/froesalexandre94-DC/zws/pkg/logger"
)

// LocalRequestID clave en c.Locals donde el middleware requestid deja el id.
const LocalRequestID = "requestid"

// RequestLogger registra cada petición con zerolog (método, ruta, status, latencia, request id).
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error().Err(err)
		}
		rid, _ := c.Locals(LocalRequestID).(string)
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("request_id", rid).
			Msg("http")
		return err
	}
}
