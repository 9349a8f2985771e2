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

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL.
type RoleRepo struct {
	pool *pgxpool.Pool
}

// NewRoleRepository construye el adaptador de lectura de roles.
func NewRoleRepository(pool *pgxpool.Pool) *RoleRepo {
	return &RoleRepo{pool: pool}
}

// GetByID obtiene un rol por ID dentro del tenant. Devuelve nil si no existe.
func (r *RoleRepo) GetByID(ctx context.Context, tenantID, id string) (*entity.Role, error) {
	query := `
		SELECT id, tenant_id, name, description
		FROM roles WHERE tenant_id = $1 AND id = $2`
	var role entity.Role
	err := r.pool.QueryRow(ctx, query, tenantID, id).Scan(&role.ID, &role.TenantID, &role.Name, &role.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role by id: %w", err)
	}
	return &role, nil
}

// ListWithPermissions devuelve los roles del tenant con sus códigos de permiso
// (join roles → role_permissions → permissions en una sola consulta).
// Un rol sin permisos aparece con PermissionCodes vacío, no desaparece del listado.
func (r *RoleRepo) ListWithPermissions(ctx context.Context, tenantID string) ([]*entity.RoleWithPermissions, error) {
	query := `
		SELECT r.id, r.tenant_id, r.name, r.description, p.code
		FROM roles r
		LEFT JOIN role_permissions rp ON rp.role_id = r.id
		LEFT JOIN permissions p ON p.id = rp.permission_id
		WHERE r.tenant_id = $1
		ORDER BY r.name, p.code`
	rows, err := r.pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list roles with permissions: %w", err)
	}
	defer rows.Close()

	byID := make(map[string]*entity.RoleWithPermissions)
	var list []*entity.RoleWithPermissions
	for rows.Next() {
		var role entity.Role
		var code *string
		if err := rows.Scan(&role.ID, &role.TenantID, &role.Name, &role.Description, &code); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		rp, ok := byID[role.ID]
		if !ok {
			rp = &entity.RoleWithPermissions{Role: role, PermissionCodes: []string{}}
			byID[role.ID] = rp
			list = append(list, rp)
		}
		if code != nil {
			rp.PermissionCodes = append(rp.PermissionCodes, *code)
		}
	}
	return list, rows.Err()
}

// ListHierarchy devuelve todas las aristas padre→hijo del tenant.
func (r *RoleRepo) ListHierarchy(ctx context.Context, tenantID string) ([]entity.RoleHierarchyEdge, error) {
	query := `
		SELECT h.parent_role_id, h.child_role_id
		FROM role_hierarchy h
		JOIN roles r ON r.id = h.parent_role_id
		WHERE r.tenant_id = $1`
	rows, err := r.pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list role hierarchy: %w", err)
	}
	defer rows.Close()
	var edges []entity.RoleHierarchyEdge
	for rows.Next() {
		var e entity.RoleHierarchyEdge
		if err := rows.Scan(&e.ParentRoleID, &e.ChildRoleID); err != nil {
			return nil, fmt.Errorf("scan hierarchy edge: %w", err)
		}
		edges = append(edges, e)
	}
	return edges, rows.Err()
}

// PermissionCodes devuelve los códigos de permiso de un rol (se embeben en el token).
func (r *RoleRepo) PermissionCodes(ctx context.Context, roleID string) ([]string, error) {
	query := `
		SELECT p.code
		FROM role_permissions rp
		JOIN permissions p ON p.id = rp.permission_id
		WHERE rp.role_id = $1
		ORDER BY p.code`
	rows, err := r.pool.Query(ctx, query, roleID)
	if err != nil {
		return nil, fmt.Errorf("permission codes: %w", err)
	}
	defer rows.Close()
	codes := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan permission code: %w", err)
		}
		codes = append(codes, c)
	}
	return codes, rows.Err()
}

// ChildRoleIDs devuelve los hijos directos de un rol en la jerarquía.
func (r *RoleRepo) ChildRoleIDs(ctx context.Context, roleID string) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT child_role_id FROM role_hierarchy WHERE parent_role_id = $1`, roleID)
	if err != nil {
		return nil, fmt.Errorf("child roles: %w", err)
	}
	defer rows.Close()
	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan child role: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
