package http

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Params parámetros planos de la petición: query string más cuerpo (form, multipart o JSON).
// Si una clave viene en ambos lados gana el cuerpo.
type Params map[string]string

// Get devuelve el valor de key, o "" si no vino.
func (p Params) Get(key string) string {
	return p[key]
}

// RequestParams lee los parámetros de la petición una sola vez.
func RequestParams(c *fiber.Ctx) Params {
	p := Params{}
	c.Context().QueryArgs().VisitAll(func(k, v []byte) {
		p[string(k)] = string(v)
	})

	ct := strings.ToLower(c.Get(fiber.HeaderContentType))
	switch {
	case strings.HasPrefix(ct, fiber.MIMEApplicationJSON):
		var body map[string]any
		if err := json.Unmarshal(c.Body(), &body); err == nil {
			for k, v := range body {
				if s, ok := stringify(v); ok {
					p[k] = s
				}
			}
		}
	case strings.HasPrefix(ct, fiber.MIMEApplicationForm):
		// Se parsea el cuerpo directamente: PATCH también trae form-urlencoded.
		if values, err := url.ParseQuery(string(c.Body())); err == nil {
			for k, vs := range values {
				if len(vs) > 0 {
					p[k] = vs[0]
				}
			}
		}
	case strings.HasPrefix(ct, fiber.MIMEMultipartForm):
		if form, err := c.MultipartForm(); err == nil {
			for k, vs := range form.Value {
				if len(vs) > 0 {
					p[k] = vs[0]
				}
			}
		}
	}
	return p
}

// stringify aplana un valor JSON. Los arrays se unen con coma (user_ids: [..]).
func stringify(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	case []any:
		parts := make([]string, 0, len(t))
		for _, e := range t {
			if s, ok := stringify(e); ok {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ","), true
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return "", false
		}
		return string(b), true
	}
}
