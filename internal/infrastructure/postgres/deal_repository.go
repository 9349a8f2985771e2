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

var _ repository.DealRepository = (*DealRepo)(nil)

// DealRepo implementación del puerto DealRepository sobre PostgreSQL.
// Amount es NUMERIC(15,2); el codec pgx-shopspring-decimal del pool lo mapea
// a decimal.Decimal sin pasar por float64.
type DealRepo struct {
	pool *pgxpool.Pool
}

// NewDealRepository construye el adaptador de persistencia para deals.
func NewDealRepository(pool *pgxpool.Pool) *DealRepo {
	return &DealRepo{pool: pool}
}

// Create persiste un nuevo deal.
func (r *DealRepo) Create(ctx context.Context, d *entity.Deal) error {
	query := `
		INSERT INTO deals (id, tenant_id, account_id, primary_contact_id, title, amount, currency,
			stage_id, status, close_date, owner_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(ctx, query,
		d.ID, d.TenantID, d.AccountID, d.PrimaryContactID, d.Title, d.Amount, d.Currency,
		d.StageID, d.Status, d.CloseDate, d.OwnerID, d.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert deal: %w", err)
	}
	return nil
}

// GetByID obtiene un deal por ID dentro del tenant. Devuelve nil si no existe.
func (r *DealRepo) GetByID(ctx context.Context, tenantID, id string) (*entity.Deal, error) {
	query := `
		SELECT id, tenant_id, account_id, primary_contact_id, title, amount, currency,
			stage_id, status, close_date, owner_id, created_at
		FROM deals WHERE tenant_id = $1 AND id = $2`
	var d entity.Deal
	err := r.pool.QueryRow(ctx, query, tenantID, id).Scan(
		&d.ID, &d.TenantID, &d.AccountID, &d.PrimaryContactID, &d.Title, &d.Amount, &d.Currency,
		&d.StageID, &d.Status, &d.CloseDate, &d.OwnerID, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get deal by id: %w", err)
	}
	return &d, nil
}

// ListByTenant lista los deals del tenant, más recientes primero.
func (r *DealRepo) ListByTenant(ctx context.Context, tenantID string) ([]*entity.Deal, error) {
	query := `
		SELECT id, tenant_id, account_id, primary_contact_id, title, amount, currency,
			stage_id, status, close_date, owner_id, created_at
		FROM deals WHERE tenant_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list deals: %w", err)
	}
	defer rows.Close()
	var list []*entity.Deal
	for rows.Next() {
		var d entity.Deal
		if err := rows.Scan(
			&d.ID, &d.TenantID, &d.AccountID, &d.PrimaryContactID, &d.Title, &d.Amount, &d.Currency,
			&d.StageID, &d.Status, &d.CloseDate, &d.OwnerID, &d.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan deal: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// ListStages lista las etapas del pipeline del tenant ordenadas por sort_order.
func (r *DealRepo) ListStages(ctx context.Context, tenantID string) ([]*entity.DealStage, error) {
	query := `
		SELECT id, tenant_id, name, sort_order
		FROM deal_stages WHERE tenant_id = $1 ORDER BY sort_order`
	rows, err := r.pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list deal stages: %w", err)
	}
	defer rows.Close()
	var list []*entity.DealStage
	for rows.Next() {
		var s entity.DealStage
		if err := rows.Scan(&s.ID, &s.TenantID, &s.Name, &s.SortOrder); err != nil {
			return nil, fmt.Errorf("scan deal stage: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
