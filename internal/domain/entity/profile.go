package entity

import "time"

// Profile es el perfil 1:1 con una identidad autenticada.
// RoleID referencia al rol del tenant; AvatarObjectID apunta al objeto de storage (nullable).
type Profile struct {
	ID             string
	TenantID       string
	FullName       string
	Email          string
	PasswordHash   string // bcrypt hash, nunca plano en dominio después de persistir
	RoleID         string
	AvatarObjectID *string
	CreatedAt      time.Time
}
