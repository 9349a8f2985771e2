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

var _ repository.TaskRepository = (*TaskRepo)(nil)

// TaskRepo implementación del puerto TaskRepository sobre PostgreSQL.
type TaskRepo struct {
	pool *pgxpool.Pool
}

// NewTaskRepository construye el adaptador de persistencia para tareas.
func NewTaskRepository(pool *pgxpool.Pool) *TaskRepo {
	return &TaskRepo{pool: pool}
}

// Create persiste una nueva tarea.
func (r *TaskRepo) Create(ctx context.Context, t *entity.Task) error {
	query := `
		INSERT INTO tasks (id, tenant_id, project_id, title, status, owner_role_id, enforcement_mode, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query,
		t.ID, t.TenantID, t.ProjectID, t.Title, t.Status, t.OwnerRoleID, t.EnforcementMode, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// GetByID obtiene una tarea por ID dentro del tenant. Devuelve nil si no existe.
func (r *TaskRepo) GetByID(ctx context.Context, tenantID, id string) (*entity.Task, error) {
	query := `
		SELECT id, tenant_id, project_id, title, status, owner_role_id, enforcement_mode, created_at
		FROM tasks WHERE tenant_id = $1 AND id = $2`
	var t entity.Task
	err := r.pool.QueryRow(ctx, query, tenantID, id).Scan(
		&t.ID, &t.TenantID, &t.ProjectID, &t.Title, &t.Status, &t.OwnerRoleID, &t.EnforcementMode, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task by id: %w", err)
	}
	return &t, nil
}

// ListByProject lista las tareas de un proyecto en orden de creación.
func (r *TaskRepo) ListByProject(ctx context.Context, tenantID, projectID string) ([]*entity.Task, error) {
	query := `
		SELECT id, tenant_id, project_id, title, status, owner_role_id, enforcement_mode, created_at
		FROM tasks WHERE tenant_id = $1 AND project_id = $2 ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query, tenantID, projectID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Task
	for rows.Next() {
		var t entity.Task
		if err := rows.Scan(&t.ID, &t.TenantID, &t.ProjectID, &t.Title, &t.Status, &t.OwnerRoleID, &t.EnforcementMode, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado de una tarea dentro del tenant.
func (r *TaskRepo) UpdateStatus(ctx context.Context, tenantID, id, status string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE tasks SET status = $3 WHERE tenant_id = $1 AND id = $2`,
		tenantID, id, status,
	)
	if err != nil {
		return fmt.Errorf("update task status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update task status: ninguna fila afectada")
	}
	return nil
}

// CountByTenant cuenta las tareas del tenant (widget del dashboard).
func (r *TaskRepo) CountByTenant(ctx context.Context, tenantID string) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM tasks WHERE tenant_id = $1`, tenantID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	return n, nil
}
