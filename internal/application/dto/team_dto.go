package dto

// RoleCardDTO rol con sus badges de permiso y el conteo de miembros derivado.
type RoleCardDTO struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
	MemberCount int      `json:"member_count"`
}

// MemberDTO perfil con el nombre de su rol resuelto contra el listado ya cargado.
type MemberDTO struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	RoleID   string `json:"role_id"`
	RoleName string `json:"role_name,omitempty"`
}

// HierarchyLineDTO arista de jerarquía lista para render: "Parent → manages → Child".
// Si alguno de los IDs no resuelve a un rol, el nombre queda vacío; nunca falla.
type HierarchyLineDTO struct {
	ParentRoleID string `json:"parent_role_id"`
	ChildRoleID  string `json:"child_role_id"`
	ParentName   string `json:"parent_name,omitempty"`
	ChildName    string `json:"child_name,omitempty"`
	Label        string `json:"label"`
}

// TeamResponse vista de organización: roles, miembros y jerarquía.
type TeamResponse struct {
	Roles     []RoleCardDTO      `json:"roles"`
	Members   []MemberDTO        `json:"members"`
	Hierarchy []HierarchyLineDTO `json:"hierarchy"`
}
