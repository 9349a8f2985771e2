package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/crm-pro/internal/application/team"
)

// TeamHandler maneja la vista de estructura de la organización.
type TeamHandler struct {
	uc *team.TeamUseCase
}

// NewTeamHandler construye el handler.
func NewTeamHandler(uc *team.TeamUseCase) *TeamHandler {
	return &TeamHandler{uc: uc}
}

// GetTeam devuelve roles con permisos, miembros y jerarquía del tenant.
// GET /api/team
func (h *TeamHandler) GetTeam(c *fiber.Ctx) error {
	resp, err := h.uc.GetTeam(c.Context(), GetTenantID(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(resp)
}
