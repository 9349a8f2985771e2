// Package team arma la vista de estructura de la organización: roles con sus
// permisos, miembros y la jerarquía "manages". Las tres lecturas son
// independientes y se lanzan en paralelo; las derivaciones son funciones puras
// recalculadas en cada petición sobre el snapshot recién consultado.
package team

import (
	"context"
	"fmt"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// TeamUseCase genera la vista de equipo del tenant.
type TeamUseCase struct {
	roleRepo    repository.RoleRepository
	profileRepo repository.ProfileRepository
}

// NewTeamUseCase construye el caso de uso.
func NewTeamUseCase(roleRepo repository.RoleRepository, profileRepo repository.ProfileRepository) *TeamUseCase {
	return &TeamUseCase{roleRepo: roleRepo, profileRepo: profileRepo}
}

// GetTeam lanza las tres consultas en paralelo (roles+permisos, perfiles,
// aristas de jerarquía), las junta y deriva la respuesta.
func (uc *TeamUseCase) GetTeam(ctx context.Context, tenantID string) (*dto.TeamResponse, error) {
	type rolesResult struct {
		roles []*entity.RoleWithPermissions
		err   error
	}
	type profilesResult struct {
		profiles []*entity.Profile
		err      error
	}
	type edgesResult struct {
		edges []entity.RoleHierarchyEdge
		err   error
	}

	rolesCh := make(chan rolesResult, 1)
	profilesCh := make(chan profilesResult, 1)
	edgesCh := make(chan edgesResult, 1)

	go func() {
		roles, err := uc.roleRepo.ListWithPermissions(ctx, tenantID)
		rolesCh <- rolesResult{roles, err}
	}()
	go func() {
		profiles, err := uc.profileRepo.ListByTenant(ctx, tenantID)
		profilesCh <- profilesResult{profiles, err}
	}()
	go func() {
		edges, err := uc.roleRepo.ListHierarchy(ctx, tenantID)
		edgesCh <- edgesResult{edges, err}
	}()

	roles := <-rolesCh
	profiles := <-profilesCh
	edges := <-edgesCh

	if roles.err != nil {
		return nil, fmt.Errorf("team: roles con permisos: %w", roles.err)
	}
	if profiles.err != nil {
		return nil, fmt.Errorf("team: perfiles: %w", profiles.err)
	}
	if edges.err != nil {
		return nil, fmt.Errorf("team: jerarquía: %w", edges.err)
	}

	return &dto.TeamResponse{
		Roles:     RoleCards(roles.roles, profiles.profiles),
		Members:   Members(profiles.profiles, roles.roles),
		Hierarchy: HierarchyLines(edges.edges, roles.roles),
	}, nil
}
