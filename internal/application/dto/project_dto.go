package dto

import "time"

// CreateProjectRequest entrada para crear un proyecto. Solo el nombre viaja
// desde el cliente; tenant y modo por defecto los asigna el servidor.
type CreateProjectRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description"`
}

// ProjectResponse salida de un proyecto.
type ProjectResponse struct {
	ID              string    `json:"id"`
	TenantID        string    `json:"tenant_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	EnforcementMode string    `json:"enforcement_mode"`
	CreatedAt       time.Time `json:"created_at"`
}

// ProjectListResponse lista completa de proyectos del tenant.
type ProjectListResponse struct {
	Items []ProjectResponse `json:"items"`
}

// CreateProjectResponse proyecto creado + lista re-consultada tras la mutación.
type CreateProjectResponse struct {
	Created  ProjectResponse   `json:"created"`
	Projects []ProjectResponse `json:"projects"`
}

// CreateTaskRequest entrada para agregar una tarea a un proyecto.
type CreateTaskRequest struct {
	Title string `json:"title" validate:"required,min=1,max=500"`
}

// TaskResponse salida de una tarea.
type TaskResponse struct {
	ID              string    `json:"id"`
	ProjectID       string    `json:"project_id"`
	Title           string    `json:"title"`
	Status          string    `json:"status"`
	OwnerRoleID     string    `json:"owner_role_id"`
	EnforcementMode string    `json:"enforcement_mode"`
	CreatedAt       time.Time `json:"created_at"`
}

// ProjectDetailResponse vista de detalle: proyecto + tareas en orden de creación.
// Toda mutación sobre el proyecto devuelve esta misma vista re-consultada:
// el estado reflejado por el servidor siempre gana.
type ProjectDetailResponse struct {
	Project ProjectResponse `json:"project"`
	Tasks   []TaskResponse  `json:"tasks"`
}
