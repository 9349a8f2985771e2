package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// Límite por defecto del feed de actividades.
const defaultActivityLimit = 50

// ActivityUseCase registra y lista interacciones (llamadas, emails, reuniones,
// notas) ligadas a exactamente un padre CRM vía vínculo {kind, target_id}.
type ActivityUseCase struct {
	activityRepo repository.ActivityRepository
}

// NewActivityUseCase construye el caso de uso.
func NewActivityUseCase(activityRepo repository.ActivityRepository) *ActivityUseCase {
	return &ActivityUseCase{activityRepo: activityRepo}
}

// List devuelve el feed de actividades del tenant, más reciente primero.
func (uc *ActivityUseCase) List(ctx context.Context, tenantID string, limit int) (*dto.ActivityListResponse, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	activities, err := uc.activityRepo.ListByTenant(ctx, tenantID, limit)
	if err != nil {
		return nil, fmt.Errorf("listando actividades: %w", err)
	}
	items := make([]dto.ActivityResponse, 0, len(activities))
	for _, a := range activities {
		items = append(items, dto.ActivityResponse{
			ID:         a.ID,
			Type:       a.Type,
			ActorID:    a.ActorID,
			OccurredAt: a.OccurredAt,
			Content:    a.Content,
			Link:       dto.LinkDTO{Kind: a.Link.Kind, TargetID: a.Link.TargetID},
		})
	}
	return &dto.ActivityListResponse{Items: items}, nil
}

// Create registra una actividad. El vínculo se valida antes de persistir:
// una actividad cuelga de una cuenta, un contacto o un deal, nunca de dos.
func (uc *ActivityUseCase) Create(ctx context.Context, tenantID, actorID string, req dto.CreateActivityRequest) (*dto.ActivityListResponse, error) {
	link := entity.RecordLink{Kind: req.Link.Kind, TargetID: req.Link.TargetID}
	if err := link.Validate(entity.LinkKindAccount, entity.LinkKindContact, entity.LinkKindDeal); err != nil {
		return nil, err
	}

	a := &entity.Activity{
		ID:         uuid.New().String(),
		TenantID:   tenantID,
		Type:       req.Type,
		ActorID:    actorID,
		OccurredAt: time.Now().UTC(),
		Content:    req.Content,
		Link:       link,
	}
	if err := uc.activityRepo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("creando actividad: %w", err)
	}
	return uc.List(ctx, tenantID, defaultActivityLimit)
}
