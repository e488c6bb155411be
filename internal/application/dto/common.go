package dto

// ErrorResponse cuerpo de error HTTP: {"error": "<mensaje>"}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse cuerpo informativo para transiciones de estado: {"message": "<texto>"}.
type MessageResponse struct {
	Message string `json:"message"`
}
