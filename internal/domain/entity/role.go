package entity

// Role es un paquete de permisos con nombre, propio de un tenant.
// Los roles forman una jerarquía dirigida padre→hijo ("manages"); se asume
// acíclica, aquí no se verifica aciclicidad.
type Role struct {
	ID          string
	TenantID    string
	Name        string
	Description string
}

// Permission es un permiso individual identificado por su código (ej. "deal:read").
type Permission struct {
	ID          string
	Code        string
	Description string
}

// RoleWithPermissions es el resultado del join roles → role_permissions → permissions.
type RoleWithPermissions struct {
	Role
	PermissionCodes []string
}

// RoleHierarchyEdge es una arista padre→hijo de la jerarquía de roles.
type RoleHierarchyEdge struct {
	ParentRoleID string
	ChildRoleID  string
}
