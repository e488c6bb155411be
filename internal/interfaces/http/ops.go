package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/swaggo/swag"
)

// RegisterOps registra las rutas operativas: /health y el documento OpenAPI registrado por swag.
func RegisterOps(app *fiber.App, appName string) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": appName})
	})
	app.Get("/swagger/doc.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc()
		if err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.SendString(doc)
	})
}
