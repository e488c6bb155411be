package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/directorio-api/internal/application/usecase"
	"github.com/jhoicas/directorio-api/internal/domain/entity"
)

// UserHandler maneja la API key propia y el flujo de acceso admin (email + password).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// APIKey godoc
// @Summary      Obtener la API key propia
// @Tags         users
// @Produce      json
// @Param        email     query  string  true  "Email"
// @Param        password  query  string  true  "Contraseña"
// @Success      200  {object}  dto.APIKeyResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api-key [get]
func (h *UserHandler) APIKey(c *fiber.Ctx, _ Params, caller *entity.User) error {
	return c.JSON(h.uc.APIKey(caller))
}

// RequestAdminAccess godoc
// @Summary      Solicitar acceso admin
// @Tags         users
// @Produce      json
// @Param        email     formData  string  true  "Email"
// @Param        password  formData  string  true  "Contraseña"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /request-admin-access [patch]
func (h *UserHandler) RequestAdminAccess(c *fiber.Ctx, _ Params, caller *entity.User) error {
	out, err := h.uc.RequestAdminAccess(c.UserContext(), caller)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AdminRequests godoc
// @Summary      Listar solicitudes de acceso admin (superadmin)
// @Tags         users
// @Produce      json
// @Param        email     query  string  true  "Email"
// @Param        password  query  string  true  "Contraseña"
// @Success      200  {array}   dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /admin-requests [get]
func (h *UserHandler) AdminRequests(c *fiber.Ctx, _ Params, caller *entity.User) error {
	out, err := h.uc.ListAdminRequests(c.UserContext(), caller)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RequestAction godoc
// @Summary      Aprobar solicitudes de acceso admin (superadmin)
// @Tags         users
// @Produce      json
// @Param        email     formData  string  true  "Email"
// @Param        password  formData  string  true  "Contraseña"
// @Param        user_ids  formData  string  true  "IDs separados por coma"
// @Success      200  {object}  dto.MessageResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /request-action [patch]
func (h *UserHandler) RequestAction(c *fiber.Ctx, p Params, caller *entity.User) error {
	out, err := h.uc.ApproveAdminRequests(c.UserContext(), caller, p.Get("user_ids"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
