package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/application/usecase"
)

// DealHandler maneja el pipeline de deals.
type DealHandler struct {
	uc *usecase.CRMUseCase
}

// NewDealHandler construye el handler.
func NewDealHandler(uc *usecase.CRMUseCase) *DealHandler {
	return &DealHandler{uc: uc}
}

// List devuelve deals y etapas del pipeline (consultados en paralelo).
// GET /api/deals
func (h *DealHandler) List(c *fiber.Ctx) error {
	resp, err := h.uc.ListDeals(c.Context(), GetTenantID(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(resp)
}

// Create inserta un deal; el owner es el usuario autenticado.
// POST /api/deals
func (h *DealHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDealRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	resp, err := h.uc.CreateDeal(c.Context(), GetTenantID(c), GetUserID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}
