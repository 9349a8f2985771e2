package repository

import (
	"context"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// RoleRepository define el puerto de lectura del modelo de roles y permisos.
// Toda consulta está acotada al tenant; la expansión roles → role_permissions
// → permissions se resuelve en una sola consulta con join.
type RoleRepository interface {
	GetByID(ctx context.Context, tenantID, id string) (*entity.Role, error)
	ListWithPermissions(ctx context.Context, tenantID string) ([]*entity.RoleWithPermissions, error)
	ListHierarchy(ctx context.Context, tenantID string) ([]entity.RoleHierarchyEdge, error)
	// PermissionCodes devuelve los códigos de permiso de un rol (para el token).
	PermissionCodes(ctx context.Context, roleID string) ([]string, error)
	// ChildRoleIDs devuelve los roles hijos directos de un rol en la jerarquía.
	ChildRoleIDs(ctx context.Context, roleID string) ([]string, error)
}
