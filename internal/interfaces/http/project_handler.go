package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/application/usecase"
)

// ProjectHandler maneja proyectos y sus tareas.
type ProjectHandler struct {
	uc *usecase.ProjectUseCase
}

// NewProjectHandler construye el handler.
func NewProjectHandler(uc *usecase.ProjectUseCase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

// List devuelve los proyectos del tenant, más reciente primero.
// GET /api/projects
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	resp, err := h.uc.List(c.Context(), GetTenantID(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(resp)
}

// Create godoc
// @Summary      Crear proyecto
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateProjectRequest  true  "name, description"
// @Success      201   {object}  dto.CreateProjectResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/projects [post]
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProjectRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	// El tenant sale de la sesión; cualquier tenant_id en el body se ignora.
	resp, err := h.uc.Create(c.Context(), GetTenantID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetDetail devuelve proyecto + tareas en orden de creación.
// GET /api/projects/:id
func (h *ProjectHandler) GetDetail(c *fiber.Ctx) error {
	resp, err := h.uc.GetDetail(c.Context(), GetTenantID(c), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(resp)
}

// AddTask agrega una tarea y devuelve el detalle re-consultado.
// POST /api/projects/:id/tasks
func (h *ProjectHandler) AddTask(c *fiber.Ctx) error {
	var in dto.CreateTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	claims := GetClaims(c)
	if claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "LOGIN_REQUIRED", Message: "sesión no encontrada"})
	}
	resp, err := h.uc.AddTask(c.Context(), claims.Meta.TenantID, c.Params("id"), claims.Meta.RoleID, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ToggleTask invierte el estado de una tarea contra el estado persistido y
// devuelve el detalle re-consultado.
// PATCH /api/projects/:id/tasks/:taskId/toggle
func (h *ProjectHandler) ToggleTask(c *fiber.Ctx) error {
	resp, err := h.uc.ToggleTask(c.Context(), GetTenantID(c), c.Params("id"), c.Params("taskId"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(resp)
}
