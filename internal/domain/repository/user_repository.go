package repository

import (
	"context"

	"github.com/jhoicas/directorio-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos Find* devuelven (nil, nil) cuando no hay coincidencia.
type UserRepository interface {
	// Create persiste un usuario nuevo. Devuelve un error de kind domain.ErrConflict si el email ya existe.
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByAPIKey(ctx context.Context, apiKey string) (*entity.User, error)
	UpdateRole(ctx context.Context, id string, role entity.Role) error
	ListByRole(ctx context.Context, role entity.Role) ([]*entity.User, error)
	// PromoteRequested pasa a admin, en una sola transacción, los usuarios de ids cuyo rol
	// es exactamente requested_for_admin. Devuelve los ids afectados en orden de creación.
	PromoteRequested(ctx context.Context, ids []string) ([]string, error)
}
