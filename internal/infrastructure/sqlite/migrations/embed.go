package migrations

import "embed"

// FS contiene el esquema SQLite embebido.
//
//go:embed *.sql
var FS embed.FS
