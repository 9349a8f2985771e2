package entity

import "time"

// Estados válidos de una tarea.
const (
	TaskStatusTodo      = "todo"
	TaskStatusCompleted = "completed"
)

// Task pertenece a un Project; Status alterna entre todo y completed.
type Task struct {
	ID              string
	TenantID        string
	ProjectID       string
	Title           string
	Status          string // todo | completed
	OwnerRoleID     string
	EnforcementMode string
	CreatedAt       time.Time
}

// ToggledStatus devuelve el complemento lógico del estado actual:
// completed ↔ todo, nunca un tercer valor.
func (t Task) ToggledStatus() string {
	if t.Status == TaskStatusCompleted {
		return TaskStatusTodo
	}
	return TaskStatusCompleted
}
