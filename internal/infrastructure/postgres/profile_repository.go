package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo implementación del puerto ProfileRepository sobre PostgreSQL.
type ProfileRepo struct {
	pool *pgxpool.Pool
}

// NewProfileRepository construye el adaptador de persistencia para perfiles.
func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

// Create persiste un nuevo perfil.
func (r *ProfileRepo) Create(ctx context.Context, p *entity.Profile) error {
	query := `
		INSERT INTO profiles (id, tenant_id, full_name, email, password_hash, role_id, avatar_object_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query,
		p.ID, p.TenantID, p.FullName, p.Email, p.PasswordHash, p.RoleID, p.AvatarObjectID, p.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// GetByID obtiene un perfil por ID dentro del tenant. Devuelve nil si no existe.
func (r *ProfileRepo) GetByID(ctx context.Context, tenantID, id string) (*entity.Profile, error) {
	query := `
		SELECT id, tenant_id, full_name, email, password_hash, role_id, avatar_object_id, created_at
		FROM profiles WHERE tenant_id = $1 AND id = $2`
	return r.scanOne(r.pool.QueryRow(ctx, query, tenantID, id), "get profile by id")
}

// FindByEmail busca un perfil por email en todos los tenants (solo login).
func (r *ProfileRepo) FindByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	query := `
		SELECT id, tenant_id, full_name, email, password_hash, role_id, avatar_object_id, created_at
		FROM profiles WHERE email = $1 LIMIT 1`
	return r.scanOne(r.pool.QueryRow(ctx, query, email), "get profile by email")
}

// ListByTenant lista todos los perfiles del tenant.
func (r *ProfileRepo) ListByTenant(ctx context.Context, tenantID string) ([]*entity.Profile, error) {
	query := `
		SELECT id, tenant_id, full_name, email, password_hash, role_id, avatar_object_id, created_at
		FROM profiles WHERE tenant_id = $1 ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Profile
	for rows.Next() {
		var p entity.Profile
		if err := rows.Scan(&p.ID, &p.TenantID, &p.FullName, &p.Email, &p.PasswordHash, &p.RoleID, &p.AvatarObjectID, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// SetAvatarObject asocia la clave del objeto de storage al avatar del perfil.
func (r *ProfileRepo) SetAvatarObject(ctx context.Context, tenantID, id, objectKey string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE profiles SET avatar_object_id = $3 WHERE tenant_id = $1 AND id = $2`,
		tenantID, id, objectKey,
	)
	if err != nil {
		return fmt.Errorf("set avatar: %w", err)
	}
	return nil
}

func (r *ProfileRepo) scanOne(row pgx.Row, op string) (*entity.Profile, error) {
	var p entity.Profile
	err := row.Scan(&p.ID, &p.TenantID, &p.FullName, &p.Email, &p.PasswordHash, &p.RoleID, &p.AvatarObjectID, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}
