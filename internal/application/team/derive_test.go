package team

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

func rol(id, name string, codes ...string) *entity.RoleWithPermissions {
	return &entity.RoleWithPermissions{
		Role:            entity.Role{ID: id, TenantID: "t1", Name: name},
		PermissionCodes: codes,
	}
}

// ─────────────────────────────────────────────
// Tarjetas de rol
// ─────────────────────────────────────────────

func TestRoleCards_ConteoDeMiembrosPorRol(t *testing.T) {
	roles := []*entity.RoleWithPermissions{
		rol("r1", "Admin", "deal:read", "deal:write"),
		rol("r2", "Viewer", "deal:read"),
	}
	profiles := []*entity.Profile{
		{ID: "p1", RoleID: "r1"},
		{ID: "p2", RoleID: "r1"},
		{ID: "p3", RoleID: "r2"},
	}

	cards := RoleCards(roles, profiles)

	assert.Len(t, cards, 2)
	assert.Equal(t, 2, cards[0].MemberCount)
	assert.Equal(t, 1, cards[1].MemberCount)
	assert.Equal(t, []string{"deal:read", "deal:write"}, cards[0].Permissions)
}

func TestRoleCards_RolSinPermisos_ListaVaciaNoNil(t *testing.T) {
	cards := RoleCards([]*entity.RoleWithPermissions{rol("r1", "Vacío")}, nil)

	assert.Len(t, cards, 1)
	assert.NotNil(t, cards[0].Permissions)
	assert.Empty(t, cards[0].Permissions)
	assert.Equal(t, 0, cards[0].MemberCount)
}

// ─────────────────────────────────────────────
// Miembros
// ─────────────────────────────────────────────

func TestMembers_ResuelveNombreDeRol(t *testing.T) {
	roles := []*entity.RoleWithPermissions{rol("r1", "Admin")}
	profiles := []*entity.Profile{
		{ID: "p1", FullName: "Ana", RoleID: "r1"},
		{ID: "p2", FullName: "Beto", RoleID: "r-desconocido"},
	}

	members := Members(profiles, roles)

	assert.Len(t, members, 2)
	assert.Equal(t, "Admin", members[0].RoleName)
	assert.Equal(t, "", members[1].RoleName) // role_id sin match: nombre vacío, sin error
}

// ─────────────────────────────────────────────
// Jerarquía
// ─────────────────────────────────────────────

func TestHierarchyLines_EtiquetaParentManagesChild(t *testing.T) {
	roles := []*entity.RoleWithPermissions{rol("r1", "Director"), rol("r2", "Vendedor")}
	edges := []entity.RoleHierarchyEdge{{ParentRoleID: "r1", ChildRoleID: "r2"}}

	lines := HierarchyLines(edges, roles)

	assert.Len(t, lines, 1)
	assert.Equal(t, "Director → manages → Vendedor", lines[0].Label)
}

func TestHierarchyLines_ExtremoSinRol_DegradaSinFallar(t *testing.T) {
	roles := []*entity.RoleWithPermissions{rol("r1", "Director")}
	edges := []entity.RoleHierarchyEdge{{ParentRoleID: "r1", ChildRoleID: "r-huérfano"}}

	lines := HierarchyLines(edges, roles)

	assert.Len(t, lines, 1)
	assert.Equal(t, "Director", lines[0].ParentName)
	assert.Equal(t, "", lines[0].ChildName)
	assert.Equal(t, "Director → manages → ", lines[0].Label)
}

func TestHierarchyLines_SinAristas_ListaVacia(t *testing.T) {
	lines := HierarchyLines(nil, nil)
	assert.NotNil(t, lines)
	assert.Empty(t, lines)
}
