package entity

import "time"

// Company representa una empresa del directorio. (Name, Location) es único.
// No se actualiza ni se elimina una vez creada.
type Company struct {
	ID        string
	Name      string
	Location  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
