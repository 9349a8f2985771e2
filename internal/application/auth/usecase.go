// Package auth contiene los casos de uso de autenticación: login, logout y
// alta de perfiles. El login emite un JWT cuyo bloque app_metadata lleva
// tenant, rol, permisos y roles hijos accesibles, y registra la sesión para
// que el logout pueda revocarla vía eventos.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
	"github.com/tu-usuario/crm-pro/internal/session"
	"github.com/tu-usuario/crm-pro/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// sessionRegistry contrato mínimo del registro de sesiones (permite fakes en tests).
type sessionRegistry interface {
	Save(ctx context.Context, sessionID string, d session.Data, ttl time.Duration) error
	Revoke(ctx context.Context, sessionID string) error
}

// AuthUseCase casos de uso de autenticación.
type AuthUseCase struct {
	profileRepo repository.ProfileRepository
	roleRepo    repository.RoleRepository
	tenantRepo  repository.TenantRepository
	sessions    sessionRegistry
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	profileRepo repository.ProfileRepository,
	roleRepo repository.RoleRepository,
	tenantRepo repository.TenantRepository,
	sessions sessionRegistry,
	jwtCfg JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{
		profileRepo: profileRepo,
		roleRepo:    roleRepo,
		tenantRepo:  tenantRepo,
		sessions:    sessions,
		jwtCfg:      jwtCfg,
	}
}

// Login verifica credenciales, arma el bloque de metadatos de sesión
// (permisos del rol + hijos de la jerarquía), registra la sesión y emite el JWT.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	profile, err := uc.profileRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	meta, err := uc.buildMetadata(ctx, profile)
	if err != nil {
		return nil, err
	}

	sessionID := uuid.New().String()
	ttl := time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute
	if err := uc.sessions.Save(ctx, sessionID, session.Data{
		UserID:   profile.ID,
		TenantID: profile.TenantID,
		RoleID:   profile.RoleID,
		Email:    profile.Email,
	}, ttl); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, profile.ID, profile.Email, sessionID, jwt.Metadata{
		TenantID:        meta.TenantID,
		RoleID:          meta.RoleID,
		Permissions:     meta.Permissions,
		AccessibleRoles: meta.AccessibleRoles,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:    token,
		User:     *toProfileResponse(profile),
		Metadata: *meta,
	}, nil
}

// Logout revoca la sesión; el evento publicado actualiza el snapshot del proceso.
func (uc *AuthUseCase) Logout(ctx context.Context, sessionID string) error {
	return uc.sessions.Revoke(ctx, sessionID)
}

// Register crea un perfil: hashea el password con bcrypt, verifica el tenant y
// asigna rol y tenant en el servidor (el cliente nunca etiqueta sus filas).
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.ProfileResponse, error) {
	existing, err := uc.profileRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	tenant, err := uc.tenantRepo.GetByID(ctx, in.TenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, domain.ErrNotFound // el tenant no existe
	}
	if in.RoleID != "" {
		role, err := uc.roleRepo.GetByID(ctx, in.TenantID, in.RoleID)
		if err != nil {
			return nil, err
		}
		if role == nil {
			return nil, domain.ErrNotFound // el rol no pertenece al tenant
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	fullName := in.FullName
	if fullName == "" {
		fullName = in.Email
	}
	profile := &entity.Profile{
		ID:           uuid.New().String(),
		TenantID:     in.TenantID,
		FullName:     fullName,
		Email:        in.Email,
		PasswordHash: string(hash),
		RoleID:       in.RoleID,
		CreatedAt:    time.Now(),
	}
	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return toProfileResponse(profile), nil
}

// buildMetadata resuelve permisos y roles hijos del rol del perfil.
// Un perfil sin rol obtiene listas vacías, no un error.
func (uc *AuthUseCase) buildMetadata(ctx context.Context, p *entity.Profile) (*dto.SessionMetadata, error) {
	meta := &dto.SessionMetadata{
		TenantID:        p.TenantID,
		RoleID:          p.RoleID,
		Permissions:     []string{},
		AccessibleRoles: []string{},
	}
	if p.RoleID == "" {
		return meta, nil
	}
	codes, err := uc.roleRepo.PermissionCodes(ctx, p.RoleID)
	if err != nil {
		return nil, err
	}
	children, err := uc.roleRepo.ChildRoleIDs(ctx, p.RoleID)
	if err != nil {
		return nil, err
	}
	meta.Permissions = codes
	meta.AccessibleRoles = children
	return meta, nil
}

func toProfileResponse(p *entity.Profile) *dto.ProfileResponse {
	if p == nil {
		return nil
	}
	return &dto.ProfileResponse{
		ID:        p.ID,
		TenantID:  p.TenantID,
		FullName:  p.FullName,
		Email:     p.Email,
		RoleID:    p.RoleID,
		CreatedAt: p.CreatedAt,
	}
}
