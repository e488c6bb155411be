package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/directorio-api/internal/domain"
	"github.com/jhoicas/directorio-api/internal/domain/entity"
	apphttp "github.com/jhoicas/directorio-api/internal/interfaces/http"
	"github.com/jhoicas/directorio-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testAPIKey   = "0123456789abcdef0123456789abcdef"
	testEmail    = "api@example.com"
	testPassword = "password"
)

// fakeGate resuelve un único usuario conocido.
type fakeGate struct {
	user *entity.User
}

func (g fakeGate) AuthenticateAPIKey(_ context.Context, key string) (*entity.User, error) {
	if key == "" {
		return nil, domain.NewError(domain.ErrMissingCredential, "Please add the API key. Sign up if you do not have one.")
	}
	if key != testAPIKey {
		return nil, domain.NewError(domain.ErrInvalidCredential, "User not authenticated, check the API key.")
	}
	return g.user, nil
}

func (g fakeGate) AuthenticatePassword(_ context.Context, email, pw string) (*entity.User, error) {
	if email != testEmail {
		return nil, domain.NewError(domain.ErrUnknownIdentity, "No user with this email. You need to sign up.")
	}
	if pw != testPassword {
		return nil, domain.NewError(domain.ErrInvalidCredential, "Incorrect password.")
	}
	return g.user, nil
}

// buildTestApp construye una aplicación Fiber mínima con las dos rutas protegidas:
//   - /by-key       → WithAPIKey
//   - /by-password  → WithCredentials
//
// El handler dummy devuelve el id y rol del usuario recibido como argumento.
func buildTestApp() *fiber.App {
	gate := fakeGate{user: &entity.User{ID: "u-1", Role: entity.RoleAdmin}}
	app := apphttp.NewApp("test", logger.Nop())
	echo := func(c *fiber.Ctx, p apphttp.Params, caller *entity.User) error {
		return c.JSON(fiber.Map{"id": caller.ID, "role": caller.Role, "extra": p.Get("extra")})
	}
	app.Get("/by-key", apphttp.WithAPIKey(gate, echo))
	app.Post("/by-password", apphttp.WithCredentials(gate, echo))
	return app
}

func decode(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// WithAPIKey
// ──────────────────────────────────────────────────────────────────────────────

func TestWithAPIKey_KeyValida(t *testing.T) {
	app := buildTestApp()
	req := httptest.NewRequest(http.MethodGet, "/by-key?api_key="+testAPIKey+"&extra=x", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, "u-1", body["id"])
	assert.Equal(t, "admin", body["role"])
	assert.Equal(t, "x", body["extra"], "los parámetros ya leídos llegan al handler")
}

func TestWithAPIKey_Header(t *testing.T) {
	app := buildTestApp()
	req := httptest.NewRequest(http.MethodGet, "/by-key", nil)
	req.Header.Set(apphttp.HeaderAPIKey, testAPIKey)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestWithAPIKey_SinKey_Retorna401(t *testing.T) {
	app := buildTestApp()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/by-key", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Please add the API key. Sign up if you do not have one.", decode(t, resp)["error"])
}

func TestWithAPIKey_KeyInvalida_Retorna401(t *testing.T) {
	app := buildTestApp()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/by-key?api_key=otra", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "User not authenticated, check the API key.", decode(t, resp)["error"])
}

// ──────────────────────────────────────────────────────────────────────────────
// WithCredentials
// ──────────────────────────────────────────────────────────────────────────────

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestWithCredentials_Form(t *testing.T) {
	app := buildTestApp()
	resp := postForm(t, app, "/by-password", url.Values{"email": {testEmail}, "password": {testPassword}})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "u-1", decode(t, resp)["id"])
}

func TestWithCredentials_JSON(t *testing.T) {
	app := buildTestApp()
	req := httptest.NewRequest(http.MethodPost, "/by-password",
		strings.NewReader(`{"email":"`+testEmail+`","password":"`+testPassword+`","extra":[1,2]}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "1,2", decode(t, resp)["extra"])
}

func TestWithCredentials_EmailDesconocido_Retorna400(t *testing.T) {
	app := buildTestApp()
	resp := postForm(t, app, "/by-password", url.Values{"email": {"nadie@example.com"}, "password": {testPassword}})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "No user with this email. You need to sign up.", decode(t, resp)["error"])
}

func TestWithCredentials_PasswordIncorrecto_Retorna401(t *testing.T) {
	app := buildTestApp()
	resp := postForm(t, app, "/by-password", url.Values{"email": {testEmail}, "password": {"pasword"}})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Incorrect password.", decode(t, resp)["error"])
}

// ──────────────────────────────────────────────────────────────────────────────
// ErrorHandler
// ──────────────────────────────────────────────────────────────────────────────

func TestErrorHandler_RutaInexistente(t *testing.T) {
	app := buildTestApp()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/no-existe", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, decode(t, resp), "error")
}

func TestErrorHandler_ErrorInternoNoSeExpone(t *testing.T) {
	app := apphttp.NewApp("test", logger.Nop())
	app.Get("/boom", func(c *fiber.Ctx) error { return assert.AnError })
	app.Get("/panic", func(c *fiber.Ctx) error { panic("boom") })

	for _, path := range []string{"/boom", "/panic"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode, path)
		assert.Equal(t, "internal server error", decode(t, resp)["error"], path)
		resp.Body.Close()
	}
}
