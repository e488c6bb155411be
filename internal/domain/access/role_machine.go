// Package access contiene la máquina de estados de roles y la política de autorización
// sobre el usuario ya autenticado (servicios de dominio puros, sin I/O).
package access

import (
	"fmt"
	"strings"

	"github.com/jhoicas/directorio-api/internal/domain/entity"
)

// Mensajes de la solicitud de acceso admin. Se entregan tal cual al cliente.
const (
	msgAlreadyRequested = "Already requested, you can further contact superadmin with your  user id = %s "
	msgAlreadyAdmin     = "Already given admin access."
	msgRequestAccepted  = "Your request is considered, superadmin will authorize you "

	msgPromoted    = "Given admin access to users with id %s"
	msgNotPromoted = "Users with id %s had not requested for admin access or are already admin."
)

// Transition es el resultado de aplicar una transición a un rol.
type Transition struct {
	Next    entity.Role
	Changed bool
	Message string
}

// RequestAdmin aplica la auto-solicitud user → requested_for_admin.
// requested_for_admin y admin son no-op con mensaje informativo. superadmin cae en la
// rama de transición igual que user.
func RequestAdmin(current entity.Role, userID string) Transition {
	switch current {
	case entity.RoleRequestedForAdmin:
		return Transition{Next: current, Message: fmt.Sprintf(msgAlreadyRequested, userID)}
	case entity.RoleAdmin:
		return Transition{Next: current, Message: msgAlreadyAdmin}
	case entity.RoleUser, entity.RoleSuperadmin:
		return Transition{Next: entity.RoleRequestedForAdmin, Changed: true, Message: msgRequestAccepted}
	default:
		panic(fmt.Sprintf("access: rol desconocido %q", current))
	}
}

// PromotionMessage arma el mensaje de la elevación masiva. Si no hubo afectados se
// repite la lista pedida tal como llegó (rawIDs), no la lista resuelta.
func PromotionMessage(rawIDs string, promoted []string) string {
	if len(promoted) == 0 {
		return fmt.Sprintf(msgNotPromoted, rawIDs)
	}
	return fmt.Sprintf(msgPromoted, strings.Join(promoted, ","))
}
