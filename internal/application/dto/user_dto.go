package dto

import "time"

// RegisterRequest entrada para crear una cuenta (password en texto, se hashea en el use case).
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// UserResponse salida de un usuario (sin credenciales).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	IsStaff   bool      `json:"is_staff"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenRequest entrada para emitir un token (login).
type TokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse salida con el token JWT.
type TokenResponse struct {
	Token string `json:"token"`
}

// MeResponse perfil del usuario autenticado.
type MeResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// UpdateMeRequest actualización parcial del perfil; nil significa sin cambio.
type UpdateMeRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
}
