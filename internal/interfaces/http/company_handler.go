package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/directorio-api/internal/application/dto"
	"github.com/jhoicas/directorio-api/internal/application/usecase"
	"github.com/jhoicas/directorio-api/internal/domain"
	"github.com/jhoicas/directorio-api/internal/domain/entity"
)

// CompanyHandler maneja las peticiones HTTP para el recurso Company (api_key).
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler inyectando el caso de uso.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Create godoc
// @Summary      Crear empresa (admin o superadmin)
// @Tags         companies
// @Security     ApiKey
// @Produce      json
// @Param        name      formData  string  true  "Nombre"
// @Param        location  formData  string  true  "Ubicación"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /create-company [post]
func (h *CompanyHandler) Create(c *fiber.Ctx, p Params, caller *entity.User) error {
	out, err := h.uc.Create(c.UserContext(), caller, dto.CreateCompanyRequest{
		Name:     p.Get("name"),
		Location: p.Get("location"),
	})
	if err != nil {
		// Campos faltantes se reportan con 401, igual que la falta de autorización.
		if errors.Is(err, domain.ErrValidation) {
			return writeErrorStatus(c, err, fiber.StatusUnauthorized)
		}
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByName godoc
// @Summary      Obtener empresa por nombre exacto
// @Tags         companies
// @Security     ApiKey
// @Produce      json
// @Param        name  query  string  true  "Nombre"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /company [get]
func (h *CompanyHandler) GetByName(c *fiber.Ctx, p Params, _ *entity.User) error {
	out, err := h.uc.GetByName(c.UserContext(), p.Get("name"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar empresas
// @Tags         companies
// @Security     ApiKey
// @Produce      json
// @Success      200  {array}  dto.CompanySummary
// @Router       /companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx, _ Params, _ *entity.User) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar empresas por subcadena del nombre
// @Tags         companies
// @Security     ApiKey
// @Produce      json
// @Param        search-key  query  string  true  "Texto a buscar (sensible a mayúsculas)"
// @Success      200  {array}   dto.CompanyResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /search-company [get]
func (h *CompanyHandler) Search(c *fiber.Ctx, p Params, _ *entity.User) error {
	out, err := h.uc.Search(c.UserContext(), p.Get("search-key"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
