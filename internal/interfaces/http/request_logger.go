package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/directorio-api/pkg/logger"
)

// RequestLogger registra una línea por petición. Solo se loguea el path: la query puede
// traer api_key o password.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		status := c.Response().StatusCode()

		reqLog := log.With().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Logger()
		ev := reqLog.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = reqLog.Error()
		case status >= fiber.StatusBadRequest:
			ev = reqLog.Warn()
		}
		ev.Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.IP()).
			Msg("petición HTTP")
		return nil
	}
}
