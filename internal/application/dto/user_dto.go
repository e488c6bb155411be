package dto

import "time"

// SignUpRequest entrada para registro (password en texto, se hashea en el caso de uso).
type SignUpRequest struct {
	Name     string `json:"name" form:"name" query:"name"`
	Email    string `json:"email" form:"email" query:"email"`
	Password string `json:"password" form:"password" query:"password"`
}

// APIKeyResponse salida de registro y de GET /api-key.
type APIKeyResponse struct {
	APIKey string `json:"api_key"`
}

// UserResponse salida de un usuario (sin password ni api_key).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
