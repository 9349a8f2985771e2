package repository

import (
	"context"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// DealRepository define el puerto de persistencia para Deal y DealStage.
type DealRepository interface {
	Create(ctx context.Context, d *entity.Deal) error
	GetByID(ctx context.Context, tenantID, id string) (*entity.Deal, error)
	ListByTenant(ctx context.Context, tenantID string) ([]*entity.Deal, error)
	// ListStages devuelve las etapas del pipeline ordenadas por sort_order.
	ListStages(ctx context.Context, tenantID string) ([]*entity.DealStage, error)
}
