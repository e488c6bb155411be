package repository

import (
	"context"

	"github.com/jhoicas/directorio-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	// Create devuelve un error de kind domain.ErrConflict si (name, location) ya existe.
	Create(ctx context.Context, company *entity.Company) error
	// FindByName devuelve la primera empresa con nombre exacto, o (nil, nil).
	FindByName(ctx context.Context, name string) (*entity.Company, error)
	List(ctx context.Context) ([]*entity.Company, error)
	// SearchByName busca por subcadena del nombre, sensible a mayúsculas. El término nunca
	// se interpola en SQL.
	SearchByName(ctx context.Context, term string) ([]*entity.Company, error)
}
