package repository

import (
	"context"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// AccountRepository define el puerto de persistencia para Account y Contact.
type AccountRepository interface {
	Create(ctx context.Context, a *entity.Account) error
	GetByID(ctx context.Context, tenantID, id string) (*entity.Account, error)
	ListByTenant(ctx context.Context, tenantID string) ([]*entity.Account, error)
}

// ContactRepository define el puerto de persistencia para Contact.
type ContactRepository interface {
	Create(ctx context.Context, c *entity.Contact) error
	ListByAccount(ctx context.Context, tenantID, accountID string) ([]*entity.Contact, error)
}
