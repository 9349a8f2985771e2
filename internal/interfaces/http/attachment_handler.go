package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/application/usecase"
)

// AttachmentHandler maneja adjuntos: subida multipart, listado por padre y
// URL de descarga temporal.
type AttachmentHandler struct {
	uc *usecase.AttachmentUseCase
}

// NewAttachmentHandler construye el handler.
func NewAttachmentHandler(uc *usecase.AttachmentUseCase) *AttachmentHandler {
	return &AttachmentHandler{uc: uc}
}

// Upload recibe el archivo como multipart junto con el vínculo padre.
// POST /api/attachments  (form: file, link_kind, link_target_id)
func (h *AttachmentHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "campo 'file' requerido"})
	}
	link := dto.LinkDTO{
		Kind:     c.FormValue("link_kind"),
		TargetID: c.FormValue("link_target_id"),
	}

	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "no se pudo leer el archivo"})
	}
	defer f.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	resp, err := h.uc.Upload(c.Context(), GetTenantID(c), GetUserID(c), fileHeader.Filename, fileHeader.Size, contentType, f, link)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListByLink devuelve los adjuntos colgados de un padre.
// GET /api/attachments?link_kind=deal&link_target_id=...
func (h *AttachmentHandler) ListByLink(c *fiber.Ctx) error {
	link := dto.LinkDTO{
		Kind:     c.Query("link_kind"),
		TargetID: c.Query("link_target_id"),
	}
	resp, err := h.uc.ListByLink(c.Context(), GetTenantID(c), link)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(resp)
}

// DownloadURL genera una URL de descarga temporal.
// GET /api/attachments/:id/url
func (h *AttachmentHandler) DownloadURL(c *fiber.Ctx) error {
	resp, err := h.uc.DownloadURL(c.Context(), GetTenantID(c), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(resp)
}
