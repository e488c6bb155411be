package migrations

import "embed"

// FS contiene el esquema PostgreSQL, aplicado en orden de nombre de archivo.
//
//go:embed *.sql
var FS embed.FS
