package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/application/usecase"
)

// AccountHandler maneja cuentas comerciales y sus contactos.
type AccountHandler struct {
	uc *usecase.CRMUseCase
}

// NewAccountHandler construye el handler.
func NewAccountHandler(uc *usecase.CRMUseCase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

// List devuelve las cuentas del tenant.
// GET /api/accounts
func (h *AccountHandler) List(c *fiber.Ctx) error {
	resp, err := h.uc.ListAccounts(c.Context(), GetTenantID(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(resp)
}

// Create inserta una cuenta y devuelve la lista re-consultada.
// POST /api/accounts
func (h *AccountHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	resp, err := h.uc.CreateAccount(c.Context(), GetTenantID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID devuelve una cuenta del tenant.
// GET /api/accounts/:id
func (h *AccountHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetAccount(c.Context(), GetTenantID(c), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(resp)
}

// ListContacts devuelve los contactos de una cuenta.
// GET /api/accounts/:id/contacts
func (h *AccountHandler) ListContacts(c *fiber.Ctx) error {
	resp, err := h.uc.ListContacts(c.Context(), GetTenantID(c), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(resp)
}

// CreateContact inserta un contacto bajo una cuenta del tenant.
// POST /api/accounts/:id/contacts
func (h *AccountHandler) CreateContact(c *fiber.Ctx) error {
	var in dto.CreateContactRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	resp, err := h.uc.CreateContact(c.Context(), GetTenantID(c), c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}
