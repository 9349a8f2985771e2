// Package dashboard arma el resumen de la vista principal: los dos contadores
// del tenant más el contexto de sesión que ya viaja en el token.
package dashboard

import (
	"context"
	"fmt"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
)

// projectCounter y taskCounter son los contratos mínimos que necesita el
// dashboard; los implementan los repositorios de proyectos y tareas.
type projectCounter interface {
	CountByTenant(ctx context.Context, tenantID string) (int64, error)
}

type taskCounter interface {
	CountByTenant(ctx context.Context, tenantID string) (int64, error)
}

// DashboardUseCase genera el resumen del dashboard.
//
// Los dos contadores son consultas independientes y orden-insensibles; se
// lanzan en paralelo y se juntan antes de responder. Un fallo en cualquiera
// es un error de la vista: nunca se responde cero en silencio.
type DashboardUseCase struct {
	projects projectCounter
	tasks    taskCounter
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(projects projectCounter, tasks taskCounter) *DashboardUseCase {
	return &DashboardUseCase{projects: projects, tasks: tasks}
}

// GetSummary construye el DashboardSummaryDTO para el tenant indicado.
// meta es el bloque de sesión leído del token: permisos y jerarquía no se
// consultan a la DB en esta vista.
func (uc *DashboardUseCase) GetSummary(
	ctx context.Context,
	tenantID string,
	meta dto.SessionMetadata,
) (*dto.DashboardSummaryDTO, error) {
	type countResult struct {
		n   int64
		err error
	}

	projectCh := make(chan countResult, 1)
	taskCh := make(chan countResult, 1)

	go func() {
		n, err := uc.projects.CountByTenant(ctx, tenantID)
		projectCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.tasks.CountByTenant(ctx, tenantID)
		taskCh <- countResult{n, err}
	}()

	projects := <-projectCh
	tasks := <-taskCh

	if projects.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de proyectos: %w", projects.err)
	}
	if tasks.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de tareas: %w", tasks.err)
	}

	permissions := meta.Permissions
	if permissions == nil {
		permissions = []string{}
	}

	return &dto.DashboardSummaryDTO{
		ProjectCount:        projects.n,
		TaskCount:           tasks.n,
		Permissions:         permissions,
		TenantID:            meta.TenantID,
		RoleID:              meta.RoleID,
		AccessibleRoleCount: len(meta.AccessibleRoles),
	}, nil
}
