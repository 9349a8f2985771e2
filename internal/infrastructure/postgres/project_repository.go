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

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

// ProjectRepo implementación del puerto ProjectRepository sobre PostgreSQL.
// Todas las consultas filtran por tenant_id: ninguna fila de otro tenant
// puede salir de esta capa.
type ProjectRepo struct {
	pool *pgxpool.Pool
}

// NewProjectRepository construye el adaptador de persistencia para proyectos.
func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepo {
	return &ProjectRepo{pool: pool}
}

// Create persiste un nuevo proyecto.
func (r *ProjectRepo) Create(ctx context.Context, p *entity.Project) error {
	query := `
		INSERT INTO projects (id, tenant_id, name, description, enforcement_mode, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(ctx, query,
		p.ID, p.TenantID, p.Name, p.Description, p.EnforcementMode, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// GetByID obtiene un proyecto por ID dentro del tenant. Devuelve nil si no existe.
func (r *ProjectRepo) GetByID(ctx context.Context, tenantID, id string) (*entity.Project, error) {
	query := `
		SELECT id, tenant_id, name, description, enforcement_mode, created_at
		FROM projects WHERE tenant_id = $1 AND id = $2`
	var p entity.Project
	err := r.pool.QueryRow(ctx, query, tenantID, id).Scan(
		&p.ID, &p.TenantID, &p.Name, &p.Description, &p.EnforcementMode, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project by id: %w", err)
	}
	return &p, nil
}

// ListByTenant lista los proyectos del tenant, más recientes primero.
func (r *ProjectRepo) ListByTenant(ctx context.Context, tenantID string) ([]*entity.Project, error) {
	query := `
		SELECT id, tenant_id, name, description, enforcement_mode, created_at
		FROM projects WHERE tenant_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()
	var list []*entity.Project
	for rows.Next() {
		var p entity.Project
		if err := rows.Scan(&p.ID, &p.TenantID, &p.Name, &p.Description, &p.EnforcementMode, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// CountByTenant cuenta los proyectos del tenant (widget del dashboard).
func (r *ProjectRepo) CountByTenant(ctx context.Context, tenantID string) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM projects WHERE tenant_id = $1`, tenantID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return n, nil
}
