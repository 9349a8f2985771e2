package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// ProfileUseCase operaciones sobre el perfil propio.
type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
	store       objectStore
}

// NewProfileUseCase construye el caso de uso.
func NewProfileUseCase(profileRepo repository.ProfileRepository, store objectStore) *ProfileUseCase {
	return &ProfileUseCase{profileRepo: profileRepo, store: store}
}

// UploadAvatar sube la imagen al bucket y guarda la clave en el perfil.
// Solo el dueño del perfil puede cambiar su avatar.
func (uc *ProfileUseCase) UploadAvatar(ctx context.Context, tenantID, userID, fileName string, size int64, contentType string, content io.Reader) (*dto.ProfileResponse, error) {
	p, err := uc.profileRepo.GetByID(ctx, tenantID, userID)
	if err != nil {
		return nil, fmt.Errorf("consultando perfil: %w", err)
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	objectKey, err := uc.store.Put(ctx, tenantID, "avatars/"+userID+"/"+fileName, content, size, contentType)
	if err != nil {
		return nil, fmt.Errorf("subiendo avatar: %w", err)
	}
	if err := uc.profileRepo.SetAvatarObject(ctx, tenantID, userID, objectKey); err != nil {
		return nil, fmt.Errorf("guardando avatar: %w", err)
	}

	// Re-consulta: la respuesta refleja lo persistido.
	p, err = uc.profileRepo.GetByID(ctx, tenantID, userID)
	if err != nil {
		return nil, fmt.Errorf("re-consultando perfil: %w", err)
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.ProfileResponse{
		ID:        p.ID,
		TenantID:  p.TenantID,
		FullName:  p.FullName,
		Email:     p.Email,
		RoleID:    p.RoleID,
		CreatedAt: p.CreatedAt,
	}, nil
}
