package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// Vigencia de la URL de descarga temporal.
const presignExpiry = 15 * time.Minute

// objectStore es el puerto hacia el bucket de objetos (MinIO/S3).
type objectStore interface {
	Put(ctx context.Context, tenantID, objectKey string, r io.Reader, size int64, contentType string) (string, error)
	PresignedURL(ctx context.Context, objectKey string, expiry time.Duration) (string, error)
}

// AttachmentUseCase administra adjuntos: el contenido vive en el bucket y la
// DB solo guarda la fila puente con la clave del objeto y su vínculo padre.
type AttachmentUseCase struct {
	attachmentRepo repository.AttachmentRepository
	store          objectStore
}

// NewAttachmentUseCase construye el caso de uso.
func NewAttachmentUseCase(attachmentRepo repository.AttachmentRepository, store objectStore) *AttachmentUseCase {
	return &AttachmentUseCase{attachmentRepo: attachmentRepo, store: store}
}

// Upload sube el contenido al bucket y registra la fila puente. El vínculo se
// valida primero: un adjunto cuelga de un deal, una tarea o una actividad.
func (uc *AttachmentUseCase) Upload(ctx context.Context, tenantID, uploadedBy, fileName string, size int64, contentType string, content io.Reader, linkDTO dto.LinkDTO) (*dto.AttachmentResponse, error) {
	link := entity.RecordLink{Kind: linkDTO.Kind, TargetID: linkDTO.TargetID}
	if err := link.Validate(entity.LinkKindDeal, entity.LinkKindTask, entity.LinkKindActivity); err != nil {
		return nil, err
	}

	id := uuid.New().String()
	objectKey, err := uc.store.Put(ctx, tenantID, id+"/"+fileName, content, size, contentType)
	if err != nil {
		return nil, fmt.Errorf("subiendo adjunto: %w", err)
	}

	a := &entity.Attachment{
		ID:            id,
		TenantID:      tenantID,
		StorageObject: objectKey,
		FileName:      fileName,
		FileSize:      size,
		UploadedBy:    uploadedBy,
		Link:          link,
		CreatedAt:     time.Now(),
	}
	if err := uc.attachmentRepo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("registrando adjunto: %w", err)
	}

	resp := toAttachmentResponse(a)
	return &resp, nil
}

// ListByLink devuelve los adjuntos colgados de un padre.
func (uc *AttachmentUseCase) ListByLink(ctx context.Context, tenantID string, linkDTO dto.LinkDTO) (*dto.AttachmentListResponse, error) {
	link := entity.RecordLink{Kind: linkDTO.Kind, TargetID: linkDTO.TargetID}
	if err := link.Validate(entity.LinkKindDeal, entity.LinkKindTask, entity.LinkKindActivity); err != nil {
		return nil, err
	}
	attachments, err := uc.attachmentRepo.ListByLink(ctx, tenantID, link)
	if err != nil {
		return nil, fmt.Errorf("listando adjuntos: %w", err)
	}
	items := make([]dto.AttachmentResponse, 0, len(attachments))
	for _, a := range attachments {
		items = append(items, toAttachmentResponse(a))
	}
	return &dto.AttachmentListResponse{Items: items}, nil
}

// DownloadURL genera una URL de descarga temporal para un adjunto del tenant.
func (uc *AttachmentUseCase) DownloadURL(ctx context.Context, tenantID, attachmentID string) (*dto.AttachmentURLResponse, error) {
	a, err := uc.attachmentRepo.GetByID(ctx, tenantID, attachmentID)
	if err != nil {
		return nil, fmt.Errorf("consultando adjunto: %w", err)
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	url, err := uc.store.PresignedURL(ctx, a.StorageObject, presignExpiry)
	if err != nil {
		return nil, fmt.Errorf("generando url de descarga: %w", err)
	}
	return &dto.AttachmentURLResponse{
		URL:       url,
		ExpiresAt: time.Now().UTC().Add(presignExpiry),
	}, nil
}

func toAttachmentResponse(a *entity.Attachment) dto.AttachmentResponse {
	return dto.AttachmentResponse{
		ID:         a.ID,
		FileName:   a.FileName,
		FileSize:   a.FileSize,
		UploadedBy: a.UploadedBy,
		Link:       dto.LinkDTO{Kind: a.Link.Kind, TargetID: a.Link.TargetID},
		CreatedAt:  a.CreatedAt,
	}
}
