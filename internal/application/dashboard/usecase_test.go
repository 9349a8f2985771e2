package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
)

type fakeCounter struct {
	n   int64
	err error
}

func (f fakeCounter) CountByTenant(_ context.Context, _ string) (int64, error) {
	return f.n, f.err
}

func testMeta() dto.SessionMetadata {
	return dto.SessionMetadata{
		TenantID:        "tenant-1",
		RoleID:          "role-1",
		Permissions:     []string{"deal:read", "deal:write"},
		AccessibleRoles: []string{"role-2", "role-3"},
	}
}

func TestGetSummary_JuntaAmbosConteos(t *testing.T) {
	uc := NewDashboardUseCase(fakeCounter{n: 7}, fakeCounter{n: 42})

	out, err := uc.GetSummary(context.Background(), "tenant-1", testMeta())
	require.NoError(t, err)

	assert.Equal(t, int64(7), out.ProjectCount)
	assert.Equal(t, int64(42), out.TaskCount)
	assert.Equal(t, []string{"deal:read", "deal:write"}, out.Permissions,
		"los badges de permiso salen del token, literales")
	assert.Equal(t, 2, out.AccessibleRoleCount)
}

func TestGetSummary_SinPermisos_ListaVaciaNoNil(t *testing.T) {
	uc := NewDashboardUseCase(fakeCounter{}, fakeCounter{})
	meta := testMeta()
	meta.Permissions = nil

	out, err := uc.GetSummary(context.Background(), "tenant-1", meta)
	require.NoError(t, err)
	require.NotNil(t, out.Permissions)
	assert.Empty(t, out.Permissions, "sin permisos se renderiza el fallback, no badges")
}

// Un conteo fallido es un error visible de la vista, no un cero silencioso.
func TestGetSummary_ConteoFallido_RetornaError(t *testing.T) {
	boom := errors.New("conexión perdida")

	_, err := NewDashboardUseCase(fakeCounter{err: boom}, fakeCounter{n: 1}).
		GetSummary(context.Background(), "tenant-1", testMeta())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	_, err = NewDashboardUseCase(fakeCounter{n: 1}, fakeCounter{err: boom}).
		GetSummary(context.Background(), "tenant-1", testMeta())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}
