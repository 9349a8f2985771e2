package repository

import (
	"context"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// TenantRepository define el puerto de lectura de tenants.
type TenantRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Tenant, error)
}
