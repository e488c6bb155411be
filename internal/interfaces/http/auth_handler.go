package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/directorio-api/internal/application/auth"
	"github.com/jhoicas/directorio-api/internal/application/dto"
)

// AuthHandler maneja el registro de usuarios.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// SignUp godoc
// @Summary      Registrar usuario
// @Tags         users
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        name      formData  string  false  "Nombre"
// @Param        email     formData  string  true   "Email (único)"
// @Param        password  formData  string  true   "Contraseña"
// @Success      200   {object}  dto.APIKeyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /sign-up [post]
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	p := RequestParams(c)
	out, err := h.uc.SignUp(c.UserContext(), dto.SignUpRequest{
		Name:     p.Get("name"),
		Email:    p.Get("email"),
		Password: p.Get("password"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
