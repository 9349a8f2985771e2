package repository

import (
	"context"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// AttachmentRepository define el puerto de persistencia para Attachment
// (la fila puente hacia el storage de objetos).
type AttachmentRepository interface {
	Create(ctx context.Context, a *entity.Attachment) error
	GetByID(ctx context.Context, tenantID, id string) (*entity.Attachment, error)
	ListByLink(ctx context.Context, tenantID string, link entity.RecordLink) ([]*entity.Attachment, error)
}
