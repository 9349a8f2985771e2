package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/session"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes sobre los puertos de dominio
// ──────────────────────────────────────────────────────────────────────────────

type fakeProfileRepo struct {
	byEmail map[string]*entity.Profile
	created []*entity.Profile
}

func (f *fakeProfileRepo) Create(_ context.Context, p *entity.Profile) error {
	f.created = append(f.created, p)
	return nil
}
func (f *fakeProfileRepo) GetByID(_ context.Context, _, _ string) (*entity.Profile, error) {
	return nil, nil
}
func (f *fakeProfileRepo) FindByEmail(_ context.Context, email string) (*entity.Profile, error) {
	return f.byEmail[email], nil
}
func (f *fakeProfileRepo) ListByTenant(_ context.Context, _ string) ([]*entity.Profile, error) {
	return nil, nil
}
func (f *fakeProfileRepo) SetAvatarObject(_ context.Context, _, _, _ string) error { return nil }

type fakeRoleRepo struct {
	codes    []string
	children []string
}

func (f *fakeRoleRepo) GetByID(_ context.Context, _, _ string) (*entity.Role, error) {
	return &entity.Role{ID: "role-1"}, nil
}
func (f *fakeRoleRepo) ListWithPermissions(_ context.Context, _ string) ([]*entity.RoleWithPermissions, error) {
	return nil, nil
}
func (f *fakeRoleRepo) ListHierarchy(_ context.Context, _ string) ([]entity.RoleHierarchyEdge, error) {
	return nil, nil
}
func (f *fakeRoleRepo) PermissionCodes(_ context.Context, _ string) ([]string, error) {
	return f.codes, nil
}
func (f *fakeRoleRepo) ChildRoleIDs(_ context.Context, _ string) ([]string, error) {
	return f.children, nil
}

type fakeTenantRepo struct{ tenant *entity.Tenant }

func (f *fakeTenantRepo) GetByID(_ context.Context, _ string) (*entity.Tenant, error) {
	return f.tenant, nil
}

type fakeSessions struct {
	saved   []string
	revoked []string
}

func (f *fakeSessions) Save(_ context.Context, sessionID string, _ session.Data, _ time.Duration) error {
	f.saved = append(f.saved, sessionID)
	return nil
}
func (f *fakeSessions) Revoke(_ context.Context, sessionID string) error {
	f.revoked = append(f.revoked, sessionID)
	return nil
}

func testProfile(t *testing.T, password string) *entity.Profile {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.Profile{
		ID:           "user-1",
		TenantID:     "tenant-1",
		FullName:     "Ana García",
		Email:        "ana@acme.test",
		PasswordHash: string(hash),
		RoleID:       "role-1",
		CreatedAt:    time.Now(),
	}
}

func buildUseCase(profiles *fakeProfileRepo, roles *fakeRoleRepo, sessions *fakeSessions) *AuthUseCase {
	return NewAuthUseCase(profiles, roles, &fakeTenantRepo{tenant: &entity.Tenant{ID: "tenant-1"}}, sessions,
		JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "crm-pro-test"})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas_EmiteTokenConMetadata(t *testing.T) {
	profiles := &fakeProfileRepo{byEmail: map[string]*entity.Profile{
		"ana@acme.test": testProfile(t, "secreta123"),
	}}
	roles := &fakeRoleRepo{codes: []string{"deal:read", "deal:write"}, children: []string{"role-2"}}
	sessions := &fakeSessions{}
	uc := buildUseCase(profiles, roles, sessions)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@acme.test", Password: "secreta123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	assert.Equal(t, "tenant-1", out.Metadata.TenantID)
	assert.Equal(t, "role-1", out.Metadata.RoleID)
	assert.Equal(t, []string{"deal:read", "deal:write"}, out.Metadata.Permissions)
	assert.Equal(t, []string{"role-2"}, out.Metadata.AccessibleRoles)
	assert.Len(t, sessions.saved, 1, "el login debe registrar exactamente una sesión")
}

func TestLogin_PasswordIncorrecto_RetornaUnauthorized(t *testing.T) {
	profiles := &fakeProfileRepo{byEmail: map[string]*entity.Profile{
		"ana@acme.test": testProfile(t, "secreta123"),
	}}
	sessions := &fakeSessions{}
	uc := buildUseCase(profiles, &fakeRoleRepo{}, sessions)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@acme.test", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Empty(t, sessions.saved, "un login fallido no debe registrar sesión")
}

func TestLogin_EmailDesconocido_RetornaUserNotFound(t *testing.T) {
	uc := buildUseCase(&fakeProfileRepo{byEmail: map[string]*entity.Profile{}}, &fakeRoleRepo{}, &fakeSessions{})

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@acme.test", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_PerfilSinRol_MetadataVacia(t *testing.T) {
	p := testProfile(t, "secreta123")
	p.RoleID = ""
	profiles := &fakeProfileRepo{byEmail: map[string]*entity.Profile{"ana@acme.test": p}}
	uc := buildUseCase(profiles, &fakeRoleRepo{codes: []string{"no-debe-verse"}}, &fakeSessions{})

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@acme.test", Password: "secreta123"})
	require.NoError(t, err)
	assert.Empty(t, out.Metadata.Permissions)
	assert.Empty(t, out.Metadata.AccessibleRoles)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Logout / Register
// ──────────────────────────────────────────────────────────────────────────────

func TestLogout_RevocaSesion(t *testing.T) {
	sessions := &fakeSessions{}
	uc := buildUseCase(&fakeProfileRepo{byEmail: map[string]*entity.Profile{}}, &fakeRoleRepo{}, sessions)

	require.NoError(t, uc.Logout(context.Background(), "sess-1"))
	assert.Equal(t, []string{"sess-1"}, sessions.revoked)
}

func TestRegister_EmailDuplicado_RetornaConflicto(t *testing.T) {
	profiles := &fakeProfileRepo{byEmail: map[string]*entity.Profile{
		"ana@acme.test": testProfile(t, "secreta123"),
	}}
	uc := buildUseCase(profiles, &fakeRoleRepo{}, &fakeSessions{})

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "ana@acme.test", Password: "password123", TenantID: "tenant-1",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_AsignaTenantEnServidor(t *testing.T) {
	profiles := &fakeProfileRepo{byEmail: map[string]*entity.Profile{}}
	uc := buildUseCase(profiles, &fakeRoleRepo{}, &fakeSessions{})

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "nuevo@acme.test", Password: "password123", TenantID: "tenant-1",
	})
	require.NoError(t, err)
	require.Len(t, profiles.created, 1)
	assert.Equal(t, "tenant-1", profiles.created[0].TenantID)
	assert.Equal(t, "nuevo@acme.test", out.FullName, "sin full_name se usa el email")
	assert.NotEqual(t, "password123", profiles.created[0].PasswordHash, "el hash nunca es el password plano")
}
