package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/directorio-api/internal/application/dto"
	"github.com/jhoicas/directorio-api/internal/domain"
	"github.com/jhoicas/directorio-api/pkg/logger"
)

// statusFor traduce el tipo de error de dominio a status HTTP.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrMissingCredential),
		errors.Is(err, domain.ErrInvalidCredential),
		errors.Is(err, domain.ErrAuthorizationDenied):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrUnknownIdentity),
		errors.Is(err, domain.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// writeError responde {"error": msg} para errores de dominio. Cualquier otro error se
// devuelve a Fiber y lo atiende ErrorHandler (500 + log).
func writeError(c *fiber.Ctx, err error) error {
	return writeErrorStatus(c, err, statusFor(err))
}

func writeErrorStatus(c *fiber.Ctx, err error, status int) error {
	msg, ok := domain.MessageOf(err)
	if !ok {
		return err
	}
	return c.Status(status).JSON(dto.ErrorResponse{Error: msg})
}

// ErrorHandler es el manejador final de Fiber: respeta *fiber.Error (404 de ruta, 405...)
// y registra el resto como fallo interno sin exponer el detalle.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Error: fe.Message})
		}
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("error interno atendiendo petición")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal server error"})
	}
}
