package entity

import "time"

// Role es el estado de rol de un usuario. Conjunto cerrado: ver ParseRole.
type Role string

// Roles válidos para User.
const (
	RoleUser              Role = "user"
	RoleRequestedForAdmin Role = "requested_for_admin"
	RoleAdmin             Role = "admin"
	RoleSuperadmin        Role = "superadmin"
)

// ParseRole convierte el valor persistido a Role; false si no es uno de los cuatro roles.
func ParseRole(s string) (Role, bool) {
	switch r := Role(s); r {
	case RoleUser, RoleRequestedForAdmin, RoleAdmin, RoleSuperadmin:
		return r, true
	default:
		return "", false
	}
}

func (r Role) String() string { return string(r) }

// User representa un usuario del directorio.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca se expone ni se registra en logs
	APIKey       string // 128 bits en hex, generado una sola vez al crear
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
