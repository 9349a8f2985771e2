package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

var _ repository.AttachmentRepository = (*AttachmentRepo)(nil)

// AttachmentRepo implementación del puerto AttachmentRepository sobre PostgreSQL.
type AttachmentRepo struct {
	pool *pgxpool.Pool
}

// NewAttachmentRepository construye el adaptador de persistencia para adjuntos.
func NewAttachmentRepository(pool *pgxpool.Pool) *AttachmentRepo {
	return &AttachmentRepo{pool: pool}
}

// Create persiste la fila puente del adjunto.
func (r *AttachmentRepo) Create(ctx context.Context, a *entity.Attachment) error {
	query := `
		INSERT INTO crm_attachments (id, tenant_id, storage_object_id, file_name, file_size,
			uploaded_by, link_kind, link_target_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(ctx, query,
		a.ID, a.TenantID, a.StorageObject, a.FileName, a.FileSize,
		a.UploadedBy, a.Link.Kind, a.Link.TargetID, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert attachment: %w", err)
	}
	return nil
}

// GetByID obtiene un adjunto por ID dentro del tenant. Devuelve nil si no existe.
func (r *AttachmentRepo) GetByID(ctx context.Context, tenantID, id string) (*entity.Attachment, error) {
	query := `
		SELECT id, tenant_id, storage_object_id, file_name, file_size, uploaded_by, link_kind, link_target_id, created_at
		FROM crm_attachments WHERE tenant_id = $1 AND id = $2`
	var a entity.Attachment
	err := r.pool.QueryRow(ctx, query, tenantID, id).Scan(
		&a.ID, &a.TenantID, &a.StorageObject, &a.FileName, &a.FileSize,
		&a.UploadedBy, &a.Link.Kind, &a.Link.TargetID, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get attachment by id: %w", err)
	}
	return &a, nil
}

// ListByLink lista los adjuntos colgados de un padre concreto.
func (r *AttachmentRepo) ListByLink(ctx context.Context, tenantID string, link entity.RecordLink) ([]*entity.Attachment, error) {
	query := `
		SELECT id, tenant_id, storage_object_id, file_name, file_size, uploaded_by, link_kind, link_target_id, created_at
		FROM crm_attachments WHERE tenant_id = $1 AND link_kind = $2 AND link_target_id = $3
		ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, tenantID, link.Kind, link.TargetID)
	if err != nil {
		return nil, fmt.Errorf("list attachments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Attachment
	for rows.Next() {
		var a entity.Attachment
		if err := rows.Scan(
			&a.ID, &a.TenantID, &a.StorageObject, &a.FileName, &a.FileSize,
			&a.UploadedBy, &a.Link.Kind, &a.Link.TargetID, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan attachment: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
