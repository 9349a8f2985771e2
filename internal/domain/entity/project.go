package entity

import "time"

// Modos de enforcement para proyectos y tareas.
// El valor por defecto (privado) aplica cuando la fila no declara otro modo.
const (
	EnforcementPublic     = "PUBLIC"
	EnforcementControlled = "CONTROLLED"
	EnforcementPrivate    = "PRIVATE"
)

// Project agrupa tareas dentro de un tenant.
type Project struct {
	ID              string
	TenantID        string
	Name            string
	Description     string
	EnforcementMode string
	CreatedAt       time.Time
}
