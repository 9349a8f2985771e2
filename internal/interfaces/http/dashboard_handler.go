package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/crm-pro/internal/application/dashboard"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
)

// DashboardHandler maneja el resumen de la vista principal.
type DashboardHandler struct {
	uc *dashboard.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *dashboard.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve los contadores del tenant y el contexto de sesión.
// GET /api/dashboard/summary
//
// Los contadores salen de dos consultas paralelas; permisos, rol y jerarquía
// se leen del token. Si cualquiera de los conteos falla, la vista es un error:
// nunca se responde cero en silencio.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	claims := GetClaims(c)
	if claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "LOGIN_REQUIRED", Message: "sesión no encontrada"})
	}

	summary, err := h.uc.GetSummary(c.Context(), claims.Meta.TenantID, sessionMetadata(claims))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(summary)
}
