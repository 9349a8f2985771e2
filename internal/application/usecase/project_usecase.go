package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// ProjectUseCase cubre proyectos y sus tareas. Cada mutación re-consulta la
// colección afectada y devuelve el estado fresco: el servidor siempre gana,
// nunca se parchea en memoria el resultado de la escritura.
type ProjectUseCase struct {
	projectRepo repository.ProjectRepository
	taskRepo    repository.TaskRepository
}

// NewProjectUseCase construye el caso de uso.
func NewProjectUseCase(projectRepo repository.ProjectRepository, taskRepo repository.TaskRepository) *ProjectUseCase {
	return &ProjectUseCase{projectRepo: projectRepo, taskRepo: taskRepo}
}

// List devuelve todos los proyectos del tenant, más reciente primero.
func (uc *ProjectUseCase) List(ctx context.Context, tenantID string) (*dto.ProjectListResponse, error) {
	projects, err := uc.projectRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("listando proyectos: %w", err)
	}
	return &dto.ProjectListResponse{Items: toProjectResponses(projects)}, nil
}

// Create inserta un proyecto y devuelve el creado junto con la lista
// re-consultada. El tenant lo asigna siempre el servidor desde la sesión;
// el modo por defecto es privado.
func (uc *ProjectUseCase) Create(ctx context.Context, tenantID string, req dto.CreateProjectRequest) (*dto.CreateProjectResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: el nombre del proyecto es obligatorio", domain.ErrInvalidInput)
	}

	p := &entity.Project{
		ID:              uuid.New().String(),
		TenantID:        tenantID,
		Name:            strings.TrimSpace(req.Name),
		Description:     req.Description,
		EnforcementMode: entity.EnforcementPrivate,
		CreatedAt:       time.Now(),
	}
	if err := uc.projectRepo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("creando proyecto: %w", err)
	}

	projects, err := uc.projectRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("re-consultando proyectos: %w", err)
	}

	created, err := uc.projectRepo.GetByID(ctx, tenantID, p.ID)
	if err != nil {
		return nil, fmt.Errorf("re-consultando proyecto creado: %w", err)
	}
	if created == nil {
		return nil, domain.ErrNotFound
	}

	return &dto.CreateProjectResponse{
		Created:  toProjectResponse(created),
		Projects: toProjectResponses(projects),
	}, nil
}

// GetDetail consulta proyecto y tareas en paralelo. Si el proyecto no existe
// en el tenant devuelve ErrNotFound aunque las tareas hayan resuelto.
func (uc *ProjectUseCase) GetDetail(ctx context.Context, tenantID, projectID string) (*dto.ProjectDetailResponse, error) {
	type projectResult struct {
		project *entity.Project
		err     error
	}
	type tasksResult struct {
		tasks []*entity.Task
		err   error
	}

	projectCh := make(chan projectResult, 1)
	tasksCh := make(chan tasksResult, 1)

	go func() {
		p, err := uc.projectRepo.GetByID(ctx, tenantID, projectID)
		projectCh <- projectResult{p, err}
	}()
	go func() {
		ts, err := uc.taskRepo.ListByProject(ctx, tenantID, projectID)
		tasksCh <- tasksResult{ts, err}
	}()

	pr := <-projectCh
	tr := <-tasksCh

	if pr.err != nil {
		return nil, fmt.Errorf("consultando proyecto: %w", pr.err)
	}
	if pr.project == nil {
		return nil, domain.ErrNotFound
	}
	if tr.err != nil {
		return nil, fmt.Errorf("consultando tareas: %w", tr.err)
	}

	return &dto.ProjectDetailResponse{
		Project: toProjectResponse(pr.project),
		Tasks:   toTaskResponses(tr.tasks),
	}, nil
}

// AddTask agrega una tarea al proyecto y devuelve el detalle re-consultado.
// Un título vacío (o solo espacios) se rechaza antes de tocar la persistencia.
func (uc *ProjectUseCase) AddTask(ctx context.Context, tenantID, projectID, ownerRoleID string, req dto.CreateTaskRequest) (*dto.ProjectDetailResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: el título de la tarea es obligatorio", domain.ErrInvalidInput)
	}

	project, err := uc.projectRepo.GetByID(ctx, tenantID, projectID)
	if err != nil {
		return nil, fmt.Errorf("consultando proyecto: %w", err)
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}

	task := &entity.Task{
		ID:              uuid.New().String(),
		TenantID:        tenantID,
		ProjectID:       projectID,
		Title:           title,
		Status:          entity.TaskStatusTodo,
		OwnerRoleID:     ownerRoleID,
		EnforcementMode: entity.EnforcementPrivate,
		CreatedAt:       time.Now(),
	}
	if err := uc.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("creando tarea: %w", err)
	}

	return uc.GetDetail(ctx, tenantID, projectID)
}

// ToggleTask invierte el estado de la tarea (todo ↔ completed) contra el
// estado que el servidor tiene persistido, no contra el que el cliente cree
// tener, y devuelve el detalle re-consultado.
func (uc *ProjectUseCase) ToggleTask(ctx context.Context, tenantID, projectID, taskID string) (*dto.ProjectDetailResponse, error) {
	task, err := uc.taskRepo.GetByID(ctx, tenantID, taskID)
	if err != nil {
		return nil, fmt.Errorf("consultando tarea: %w", err)
	}
	if task == nil || task.ProjectID != projectID {
		return nil, domain.ErrNotFound
	}

	if err := uc.taskRepo.UpdateStatus(ctx, tenantID, taskID, task.ToggledStatus()); err != nil {
		return nil, fmt.Errorf("actualizando estado de tarea: %w", err)
	}

	return uc.GetDetail(ctx, tenantID, projectID)
}

func toProjectResponse(p *entity.Project) dto.ProjectResponse {
	return dto.ProjectResponse{
		ID:              p.ID,
		TenantID:        p.TenantID,
		Name:            p.Name,
		Description:     p.Description,
		EnforcementMode: p.EnforcementMode,
		CreatedAt:       p.CreatedAt,
	}
}

func toProjectResponses(projects []*entity.Project) []dto.ProjectResponse {
	out := make([]dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, toProjectResponse(p))
	}
	return out
}

func toTaskResponses(tasks []*entity.Task) []dto.TaskResponse {
	out := make([]dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, dto.TaskResponse{
			ID:              t.ID,
			ProjectID:       t.ProjectID,
			Title:           t.Title,
			Status:          t.Status,
			OwnerRoleID:     t.OwnerRoleID,
			EnforcementMode: t.EnforcementMode,
			CreatedAt:       t.CreatedAt,
		})
	}
	return out
}
