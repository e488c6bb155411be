package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jhoicas/directorio-api/internal/application/dto"
	"github.com/jhoicas/directorio-api/internal/domain/access"
	"github.com/jhoicas/directorio-api/internal/domain/entity"
	"github.com/jhoicas/directorio-api/internal/domain/repository"
)

// UserUseCase flujo de solicitud y aprobación de acceso admin.
// Todas las operaciones reciben el usuario ya resuelto por el gate de autenticación.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// APIKey devuelve la API key del propio usuario.
func (uc *UserUseCase) APIKey(caller *entity.User) *dto.APIKeyResponse {
	return &dto.APIKeyResponse{APIKey: caller.APIKey}
}

// RequestAdminAccess aplica la auto-solicitud sobre el usuario que llama.
func (uc *UserUseCase) RequestAdminAccess(ctx context.Context, caller *entity.User) (*dto.MessageResponse, error) {
	t := access.RequestAdmin(caller.Role, caller.ID)
	if t.Changed {
		if err := uc.repo.UpdateRole(ctx, caller.ID, t.Next); err != nil {
			return nil, err
		}
		caller.Role = t.Next
	}
	return &dto.MessageResponse{Message: t.Message}, nil
}

// ListAdminRequests lista los usuarios en requested_for_admin. Solo superadmin.
func (uc *UserUseCase) ListAdminRequests(ctx context.Context, caller *entity.User) ([]dto.UserResponse, error) {
	if err := access.RequireSuperadmin(caller); err != nil {
		return nil, err
	}
	users, err := uc.repo.ListByRole(ctx, entity.RoleRequestedForAdmin)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, entityToUserResponse(u))
	}
	return out, nil
}

// ApproveAdminRequests eleva a admin, de forma atómica, los ids de rawIDs (separados por coma)
// que estén en requested_for_admin. Solo superadmin.
func (uc *UserUseCase) ApproveAdminRequests(ctx context.Context, caller *entity.User, rawIDs string) (*dto.MessageResponse, error) {
	if err := access.RequireSuperadmin(caller); err != nil {
		return nil, err
	}
	promoted, err := uc.repo.PromoteRequested(ctx, parseUserIDs(rawIDs))
	if err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: access.PromotionMessage(rawIDs, promoted)}, nil
}

// parseUserIDs separa por coma y descarta lo que no es un UUID: nunca podría coincidir.
func parseUserIDs(raw string) []string {
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	seen := make(map[string]bool, len(parts))
	for _, p := range parts {
		id, err := uuid.Parse(strings.TrimSpace(p))
		if err != nil {
			continue
		}
		s := id.String()
		if !seen[s] {
			seen[s] = true
			ids = append(ids, s)
		}
	}
	return ids
}

func entityToUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
