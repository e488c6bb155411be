package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/directorio-api/internal/application/auth"
	"github.com/jhoicas/directorio-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	CompanyUC *usecase.CompanyUseCase
}

// Router registra las rutas de la API. Cada ruta compone explícitamente su autenticación.
func Router(app *fiber.App, deps RouterDeps) {
	gate := deps.AuthUC

	// Usuarios (público / email + password)
	authHandler := NewAuthHandler(deps.AuthUC)
	userHandler := NewUserHandler(deps.UserUC)
	app.Post("/sign-up", authHandler.SignUp)
	app.Get("/api-key", WithCredentials(gate, userHandler.APIKey))
	app.Patch("/request-admin-access", WithCredentials(gate, userHandler.RequestAdminAccess))
	app.Get("/admin-requests", WithCredentials(gate, userHandler.AdminRequests))
	app.Patch("/request-action", WithCredentials(gate, userHandler.RequestAction))

	// Empresas (api_key)
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	app.Get("/company", WithAPIKey(gate, companyHandler.GetByName))
	app.Get("/companies", WithAPIKey(gate, companyHandler.List))
	app.Get("/search-company", WithAPIKey(gate, companyHandler.Search))
	app.Post("/create-company", WithAPIKey(gate, companyHandler.Create))
}
