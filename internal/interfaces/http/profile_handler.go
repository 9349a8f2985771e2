package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/application/usecase"
)

// ProfileHandler maneja el perfil del usuario autenticado.
type ProfileHandler struct {
	uc *usecase.ProfileUseCase
}

// NewProfileHandler construye el handler.
func NewProfileHandler(uc *usecase.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// UploadAvatar sube la imagen de perfil del usuario de la sesión.
// POST /api/profile/avatar  (form: file)
func (h *ProfileHandler) UploadAvatar(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "campo 'file' requerido"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "no se pudo leer el archivo"})
	}
	defer f.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	resp, err := h.uc.UploadAvatar(c.Context(), GetTenantID(c), GetUserID(c), fileHeader.Filename, fileHeader.Size, contentType, f)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(resp)
}
