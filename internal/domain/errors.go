package domain

import "errors"

// Tipos de error de dominio (sin dependencias externas).
// Cada uno se traduce a un único status HTTP en la capa de interfaces.
var (
	ErrMissingCredential   = errors.New("credencial ausente")
	ErrInvalidCredential   = errors.New("credencial inválida")
	ErrUnknownIdentity     = errors.New("identidad desconocida")
	ErrAuthorizationDenied = errors.New("autorización denegada")
	ErrValidation          = errors.New("entrada inválida")
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrConflict            = errors.New("conflicto con un recurso existente")
)

// Error es un fallo de dominio con el mensaje que se entrega literalmente al cliente.
// Kind es uno de los sentinels de arriba; errors.Is(err, domain.ErrNotFound) funciona.
type Error struct {
	Kind    error
	Message string
}

// NewError construye un error de dominio.
func NewError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func (e *Error) Error() string {
	if e.Message == "" && e.Kind != nil {
		return e.Kind.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Kind }

// MessageOf devuelve el mensaje público del error si es de dominio.
func MessageOf(err error) (string, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de.Error(), true
	}
	return "", false
}
