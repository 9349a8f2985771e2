package repository

import (
	"context"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// ProfileRepository define el puerto de persistencia para Profile (DIP).
type ProfileRepository interface {
	Create(ctx context.Context, p *entity.Profile) error
	GetByID(ctx context.Context, tenantID, id string) (*entity.Profile, error)
	// FindByEmail busca en todos los tenants: el login no conoce aún el tenant.
	FindByEmail(ctx context.Context, email string) (*entity.Profile, error)
	ListByTenant(ctx context.Context, tenantID string) ([]*entity.Profile, error)
	SetAvatarObject(ctx context.Context, tenantID, id, objectKey string) error
}
