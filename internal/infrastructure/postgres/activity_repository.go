package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

var _ repository.ActivityRepository = (*ActivityRepo)(nil)

// ActivityRepo implementación del puerto ActivityRepository sobre PostgreSQL.
// El vínculo polimórfico se persiste como (link_kind, link_target_id): una
// unión etiquetada en lugar de tres FKs nullable.
type ActivityRepo struct {
	pool *pgxpool.Pool
}

// NewActivityRepository construye el adaptador de persistencia para actividades.
func NewActivityRepository(pool *pgxpool.Pool) *ActivityRepo {
	return &ActivityRepo{pool: pool}
}

// Create persiste una nueva actividad.
func (r *ActivityRepo) Create(ctx context.Context, a *entity.Activity) error {
	query := `
		INSERT INTO activities (id, tenant_id, type, actor_id, occurred_at, content, link_kind, link_target_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query,
		a.ID, a.TenantID, a.Type, a.ActorID, a.OccurredAt, a.Content, a.Link.Kind, a.Link.TargetID,
	)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// ListByTenant lista las actividades del tenant, más recientes primero.
func (r *ActivityRepo) ListByTenant(ctx context.Context, tenantID string, limit int) ([]*entity.Activity, error) {
	query := `
		SELECT id, tenant_id, type, actor_id, occurred_at, content, link_kind, link_target_id
		FROM activities WHERE tenant_id = $1 ORDER BY occurred_at DESC LIMIT $2`
	rows, err := r.pool.Query(ctx, query, tenantID, limit)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()
	var list []*entity.Activity
	for rows.Next() {
		var a entity.Activity
		if err := rows.Scan(&a.ID, &a.TenantID, &a.Type, &a.ActorID, &a.OccurredAt, &a.Content, &a.Link.Kind, &a.Link.TargetID); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
