package team

import (
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// RoleCards deriva las tarjetas de rol: badges de permiso aplanados del join
// y conteo de miembros calculado sobre los perfiles ya consultados.
// Un rol sin permisos conserva la lista vacía (el render muestra el
// indicador explícito de "sin permisos", no cero tarjetas).
func RoleCards(roles []*entity.RoleWithPermissions, profiles []*entity.Profile) []dto.RoleCardDTO {
	membersByRole := make(map[string]int, len(roles))
	for _, p := range profiles {
		membersByRole[p.RoleID]++
	}
	cards := make([]dto.RoleCardDTO, 0, len(roles))
	for _, r := range roles {
		codes := r.PermissionCodes
		if codes == nil {
			codes = []string{}
		}
		cards = append(cards, dto.RoleCardDTO{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			Permissions: codes,
			MemberCount: membersByRole[r.ID],
		})
	}
	return cards
}

// Members deriva el listado de miembros resolviendo el nombre del rol por
// lookup contra los roles ya consultados; un role_id sin match deja el
// nombre vacío.
func Members(profiles []*entity.Profile, roles []*entity.RoleWithPermissions) []dto.MemberDTO {
	names := roleNames(roles)
	members := make([]dto.MemberDTO, 0, len(profiles))
	for _, p := range profiles {
		members = append(members, dto.MemberDTO{
			ID:       p.ID,
			FullName: p.FullName,
			RoleID:   p.RoleID,
			RoleName: names[p.RoleID],
		})
	}
	return members
}

// HierarchyLines deriva las líneas "Parent → manages → Child". Si un extremo
// no resuelve a un rol conocido, su nombre queda ausente y la línea degrada
// sin fallar.
func HierarchyLines(edges []entity.RoleHierarchyEdge, roles []*entity.RoleWithPermissions) []dto.HierarchyLineDTO {
	names := roleNames(roles)
	lines := make([]dto.HierarchyLineDTO, 0, len(edges))
	for _, e := range edges {
		parent := names[e.ParentRoleID]
		child := names[e.ChildRoleID]
		lines = append(lines, dto.HierarchyLineDTO{
			ParentRoleID: e.ParentRoleID,
			ChildRoleID:  e.ChildRoleID,
			ParentName:   parent,
			ChildName:    child,
			Label:        parent + " → manages → " + child,
		})
	}
	return lines
}

func roleNames(roles []*entity.RoleWithPermissions) map[string]string {
	names := make(map[string]string, len(roles))
	for _, r := range roles {
		names[r.ID] = r.Name
	}
	return names
}
