package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/directorio-api/internal/domain/entity"
)

// HeaderAPIKey alternativa al parámetro api_key.
const HeaderAPIKey = "X-API-Key"

// Gate resuelve al usuario que llama. Lo implementa *auth.AuthUseCase.
type Gate interface {
	AuthenticateAPIKey(ctx context.Context, apiKey string) (*entity.User, error)
	AuthenticatePassword(ctx context.Context, email, password string) (*entity.User, error)
}

// CallerHandler es un handler que recibe el usuario ya autenticado como argumento
// (no se guarda en c.Locals).
type CallerHandler func(c *fiber.Ctx, p Params, caller *entity.User) error

// WithAPIKey autentica por api_key (parámetro o header X-API-Key) y llama a next.
//   - 401 si falta la key o no corresponde a ningún usuario.
func WithAPIKey(gate Gate, next CallerHandler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := RequestParams(c)
		key := p.Get("api_key")
		if key == "" {
			key = c.Get(HeaderAPIKey)
		}
		caller, err := gate.AuthenticateAPIKey(c.UserContext(), key)
		if err != nil {
			return writeError(c, err)
		}
		return next(c, p, caller)
	}
}

// WithCredentials autentica por email + password y llama a next.
//   - 400 si no existe usuario con ese email.
//   - 401 si la contraseña no coincide.
func WithCredentials(gate Gate, next CallerHandler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := RequestParams(c)
		caller, err := gate.AuthenticatePassword(c.UserContext(), p.Get("email"), p.Get("password"))
		if err != nil {
			return writeError(c, err)
		}
		return next(c, p, caller)
	}
}
