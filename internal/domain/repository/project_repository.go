package repository

import (
	"context"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// ProjectRepository define el puerto de persistencia para Project.
type ProjectRepository interface {
	Create(ctx context.Context, p *entity.Project) error
	GetByID(ctx context.Context, tenantID, id string) (*entity.Project, error)
	// ListByTenant devuelve los proyectos del tenant ordenados por created_at DESC.
	ListByTenant(ctx context.Context, tenantID string) ([]*entity.Project, error)
	CountByTenant(ctx context.Context, tenantID string) (int64, error)
}
