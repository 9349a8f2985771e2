package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testChannel = "crm:session:events:test"

func setupRegistry(t *testing.T) (*Registry, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRegistryWithClient(client, testChannel), mr
}

func testData() Data {
	return Data{
		UserID:   "user-1",
		TenantID: "tenant-1",
		RoleID:   "role-1",
		Email:    "ana@acme.test",
	}
}

func TestRegistry_SaveYLookup(t *testing.T) {
	reg, _ := setupRegistry(t)
	defer reg.Close()
	ctx := context.Background()

	require.NoError(t, reg.Save(ctx, "sess-1", testData(), time.Hour))

	d, err := reg.Lookup(ctx, "sess-1")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "user-1", d.UserID)
	assert.Equal(t, "tenant-1", d.TenantID)
}

func TestRegistry_SesionExpirada_LookupNil(t *testing.T) {
	reg, mr := setupRegistry(t)
	defer reg.Close()
	ctx := context.Background()

	require.NoError(t, reg.Save(ctx, "sess-ttl", testData(), time.Millisecond))
	mr.FastForward(2 * time.Millisecond)

	d, err := reg.Lookup(ctx, "sess-ttl")
	require.NoError(t, err)
	assert.Nil(t, d, "una sesión expirada no debe resolverse")
}

func TestRegistry_Revoke_EliminaSesion(t *testing.T) {
	reg, _ := setupRegistry(t)
	defer reg.Close()
	ctx := context.Background()

	require.NoError(t, reg.Save(ctx, "sess-2", testData(), time.Hour))
	require.NoError(t, reg.Revoke(ctx, "sess-2"))

	d, err := reg.Lookup(ctx, "sess-2")
	require.NoError(t, err)
	assert.Nil(t, d)
}

// El Store solo se actualiza vía eventos: un logout publicado debe marcar la
// sesión como revocada y notificar a los listeners registrados.
func TestStore_EventosActualizanSnapshot(t *testing.T) {
	reg, _ := setupRegistry(t)
	defer reg.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := NewStore()

	var mu sync.Mutex
	var seen []Event
	store.Subscribe(func(ev Event) {
		mu.Lock()
		seen = append(seen, ev)
		mu.Unlock()
	})

	reg.Listen(ctx, store)
	// Dejar que la suscripción quede establecida antes de publicar.
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, reg.Save(ctx, "sess-3", testData(), time.Hour))
	require.NoError(t, reg.Revoke(ctx, "sess-3"))

	require.Eventually(t, func() bool {
		return store.Revoked("sess-3")
	}, 2*time.Second, 10*time.Millisecond, "el evento de logout debe revocar la sesión en el snapshot")

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, seen, 2)
	assert.Equal(t, EventLogin, seen[0].Kind)
	assert.Equal(t, EventLogout, seen[1].Kind)
	assert.Equal(t, "sess-3", seen[1].SessionID)
}

// Un login posterior con el mismo identificador limpia la revocación.
func TestStore_LoginLimpiaRevocacion(t *testing.T) {
	store := NewStore()
	store.apply(Event{Kind: EventLogout, SessionID: "s"})
	assert.True(t, store.Revoked("s"))

	store.apply(Event{Kind: EventLogin, SessionID: "s"})
	assert.False(t, store.Revoked("s"))
}
