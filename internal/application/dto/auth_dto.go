package dto

import "time"

// LoginRequest credenciales de acceso. Sin política de contraseñas aquí;
// ambos campos solo deben ser no vacíos.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest alta de perfil dentro de un tenant.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name"`
	TenantID string `json:"tenant_id" validate:"required"`
	RoleID   string `json:"role_id"`
}

// SessionMetadata bloque de metadatos que viaja en el token y que las vistas
// leen sin consultar la DB (equivalente al app_metadata del proveedor de auth).
type SessionMetadata struct {
	TenantID        string   `json:"tenant_id"`
	RoleID          string   `json:"role_id"`
	Permissions     []string `json:"permissions"`
	AccessibleRoles []string `json:"accessible_roles"`
}

// ProfileResponse salida de un perfil (nunca incluye el hash).
type ProfileResponse struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	RoleID    string    `json:"role_id"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse token + identidad + metadatos de sesión.
type LoginResponse struct {
	Token    string          `json:"token"`
	User     ProfileResponse `json:"user"`
	Metadata SessionMetadata `json:"app_metadata"`
}

// MeResponse identidad actual derivada del token (get-current-session).
type MeResponse struct {
	UserID   string          `json:"user_id"`
	Email    string          `json:"email"`
	Metadata SessionMetadata `json:"app_metadata"`
}
