package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

type fakeActivityRepo struct {
	activities []*entity.Activity
	creates    int
}

func (f *fakeActivityRepo) Create(_ context.Context, a *entity.Activity) error {
	f.creates++
	f.activities = append([]*entity.Activity{a}, f.activities...)
	return nil
}

func (f *fakeActivityRepo) ListByTenant(_ context.Context, tenantID string, limit int) ([]*entity.Activity, error) {
	var out []*entity.Activity
	for _, a := range f.activities {
		if a.TenantID == tenantID && len(out) < limit {
			out = append(out, a)
		}
	}
	return out, nil
}

func TestCreateActivity_VinculoValido_RegistraYReConsulta(t *testing.T) {
	repo := &fakeActivityRepo{}
	uc := NewActivityUseCase(repo)

	resp, err := uc.Create(context.Background(), "tenant-1", "actor-1", dto.CreateActivityRequest{
		Type:    entity.ActivityCall,
		Content: "Llamada de seguimiento",
		Link:    dto.LinkDTO{Kind: entity.LinkKindDeal, TargetID: "d1"},
	})

	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "actor-1", resp.Items[0].ActorID)
	assert.Equal(t, entity.LinkKindDeal, resp.Items[0].Link.Kind)
}

func TestCreateActivity_VinculoIncompleto_NuncaLlegaAlRepo(t *testing.T) {
	repo := &fakeActivityRepo{}
	uc := NewActivityUseCase(repo)

	_, err := uc.Create(context.Background(), "tenant-1", "actor-1", dto.CreateActivityRequest{
		Type: entity.ActivityNote,
		Link: dto.LinkDTO{Kind: entity.LinkKindDeal}, // sin target_id
	})

	assert.ErrorIs(t, err, domain.ErrInvalidLink)
	assert.Equal(t, 0, repo.creates)
}

func TestCreateActivity_KindNoPermitido_RetornaError(t *testing.T) {
	repo := &fakeActivityRepo{}
	uc := NewActivityUseCase(repo)

	// task no es un padre válido para actividades, solo para adjuntos
	_, err := uc.Create(context.Background(), "tenant-1", "actor-1", dto.CreateActivityRequest{
		Type: entity.ActivityNote,
		Link: dto.LinkDTO{Kind: entity.LinkKindTask, TargetID: "t1"},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidLink)
	assert.Equal(t, 0, repo.creates)
}
