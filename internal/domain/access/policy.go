package access

import (
	"github.com/jhoicas/directorio-api/internal/domain"
	"github.com/jhoicas/directorio-api/internal/domain/entity"
)

const (
	msgCompanyCreationDenied = "Only admin can add new company, you need superadmin authorization."
	msgSuperadminOnly        = "Only superadmin has access to this resource."
)

// CanCreateCompany exige rol admin o superadmin.
func CanCreateCompany(caller *entity.User) error {
	if caller != nil {
		switch caller.Role {
		case entity.RoleAdmin, entity.RoleSuperadmin:
			return nil
		}
	}
	return domain.NewError(domain.ErrAuthorizationDenied, msgCompanyCreationDenied)
}

// RequireSuperadmin exige rol superadmin exacto (cola de solicitudes y elevación masiva).
func RequireSuperadmin(caller *entity.User) error {
	if caller != nil && caller.Role == entity.RoleSuperadmin {
		return nil
	}
	return domain.NewError(domain.ErrAuthorizationDenied, msgSuperadminOnly)
}
