package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

var (
	_ repository.AccountRepository = (*AccountRepo)(nil)
	_ repository.ContactRepository = (*ContactRepo)(nil)
)

// AccountRepo implementación del puerto AccountRepository sobre PostgreSQL.
type AccountRepo struct {
	pool *pgxpool.Pool
}

// NewAccountRepository construye el adaptador de persistencia para cuentas.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

// Create persiste una nueva cuenta.
func (r *AccountRepo) Create(ctx context.Context, a *entity.Account) error {
	query := `
		INSERT INTO accounts (id, tenant_id, name, website, industry, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(ctx, query, a.ID, a.TenantID, a.Name, a.Website, a.Industry, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta por ID dentro del tenant. Devuelve nil si no existe.
func (r *AccountRepo) GetByID(ctx context.Context, tenantID, id string) (*entity.Account, error) {
	query := `
		SELECT id, tenant_id, name, website, industry, created_at
		FROM accounts WHERE tenant_id = $1 AND id = $2`
	var a entity.Account
	err := r.pool.QueryRow(ctx, query, tenantID, id).Scan(&a.ID, &a.TenantID, &a.Name, &a.Website, &a.Industry, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account by id: %w", err)
	}
	return &a, nil
}

// ListByTenant lista las cuentas del tenant, más recientes primero.
func (r *AccountRepo) ListByTenant(ctx context.Context, tenantID string) ([]*entity.Account, error) {
	query := `
		SELECT id, tenant_id, name, website, industry, created_at
		FROM accounts WHERE tenant_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Account
	for rows.Next() {
		var a entity.Account
		if err := rows.Scan(&a.ID, &a.TenantID, &a.Name, &a.Website, &a.Industry, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// ContactRepo implementación del puerto ContactRepository sobre PostgreSQL.
type ContactRepo struct {
	pool *pgxpool.Pool
}

// NewContactRepository construye el adaptador de persistencia para contactos.
func NewContactRepository(pool *pgxpool.Pool) *ContactRepo {
	return &ContactRepo{pool: pool}
}

// Create persiste un nuevo contacto.
func (r *ContactRepo) Create(ctx context.Context, c *entity.Contact) error {
	query := `
		INSERT INTO contacts (id, tenant_id, account_id, first_name, last_name, email, phone, position, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(ctx, query,
		c.ID, c.TenantID, c.AccountID, c.FirstName, c.LastName, c.Email, c.Phone, c.Position, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

// ListByAccount lista los contactos de una cuenta.
func (r *ContactRepo) ListByAccount(ctx context.Context, tenantID, accountID string) ([]*entity.Contact, error) {
	query := `
		SELECT id, tenant_id, account_id, first_name, last_name, email, phone, position, created_at
		FROM contacts WHERE tenant_id = $1 AND account_id = $2 ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query, tenantID, accountID)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Contact
	for rows.Next() {
		var c entity.Contact
		if err := rows.Scan(&c.ID, &c.TenantID, &c.AccountID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Position, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
