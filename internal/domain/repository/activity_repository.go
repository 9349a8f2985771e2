package repository

import (
	"context"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// ActivityRepository define el puerto de persistencia para Activity.
type ActivityRepository interface {
	Create(ctx context.Context, a *entity.Activity) error
	// ListByTenant devuelve el feed de actividades ordenado por occurred_at DESC.
	ListByTenant(ctx context.Context, tenantID string, limit int) ([]*entity.Activity, error)
}
