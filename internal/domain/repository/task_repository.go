package repository

import (
	"context"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// TaskRepository define el puerto de persistencia para Task.
type TaskRepository interface {
	Create(ctx context.Context, t *entity.Task) error
	GetByID(ctx context.Context, tenantID, id string) (*entity.Task, error)
	// ListByProject devuelve las tareas del proyecto ordenadas por created_at ASC.
	ListByProject(ctx context.Context, tenantID, projectID string) ([]*entity.Task, error)
	UpdateStatus(ctx context.Context, tenantID, id, status string) error
	CountByTenant(ctx context.Context, tenantID string) (int64, error)
}
