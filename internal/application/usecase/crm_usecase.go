package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// CRMUseCase cubre la jerarquía comercial: cuentas, contactos y deals.
type CRMUseCase struct {
	accountRepo repository.AccountRepository
	contactRepo repository.ContactRepository
	dealRepo    repository.DealRepository
}

// NewCRMUseCase construye el caso de uso.
func NewCRMUseCase(accountRepo repository.AccountRepository, contactRepo repository.ContactRepository, dealRepo repository.DealRepository) *CRMUseCase {
	return &CRMUseCase{accountRepo: accountRepo, contactRepo: contactRepo, dealRepo: dealRepo}
}

// ─────────────────────────────────────────────
// Cuentas
// ─────────────────────────────────────────────

// ListAccounts devuelve las cuentas del tenant.
func (uc *CRMUseCase) ListAccounts(ctx context.Context, tenantID string) (*dto.AccountListResponse, error) {
	accounts, err := uc.accountRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("listando cuentas: %w", err)
	}
	items := make([]dto.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		items = append(items, toAccountResponse(a))
	}
	return &dto.AccountListResponse{Items: items}, nil
}

// CreateAccount inserta una cuenta y devuelve la lista re-consultada.
func (uc *CRMUseCase) CreateAccount(ctx context.Context, tenantID string, req dto.CreateAccountRequest) (*dto.AccountListResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: el nombre de la cuenta es obligatorio", domain.ErrInvalidInput)
	}
	a := &entity.Account{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		Name:      strings.TrimSpace(req.Name),
		Website:   req.Website,
		Industry:  req.Industry,
		CreatedAt: time.Now(),
	}
	if err := uc.accountRepo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("creando cuenta: %w", err)
	}
	return uc.ListAccounts(ctx, tenantID)
}

// GetAccount devuelve una cuenta del tenant; 404 si no es visible.
func (uc *CRMUseCase) GetAccount(ctx context.Context, tenantID, accountID string) (*dto.AccountResponse, error) {
	account, err := uc.accountRepo.GetByID(ctx, tenantID, accountID)
	if err != nil {
		return nil, fmt.Errorf("consultando cuenta: %w", err)
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	resp := toAccountResponse(account)
	return &resp, nil
}

// ─────────────────────────────────────────────
// Contactos
// ─────────────────────────────────────────────

// ListContacts devuelve los contactos de una cuenta, verificando primero que
// la cuenta pertenezca al tenant.
func (uc *CRMUseCase) ListContacts(ctx context.Context, tenantID, accountID string) (*dto.ContactListResponse, error) {
	account, err := uc.accountRepo.GetByID(ctx, tenantID, accountID)
	if err != nil {
		return nil, fmt.Errorf("consultando cuenta: %w", err)
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	contacts, err := uc.contactRepo.ListByAccount(ctx, tenantID, accountID)
	if err != nil {
		return nil, fmt.Errorf("listando contactos: %w", err)
	}
	items := make([]dto.ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		items = append(items, toContactResponse(c))
	}
	return &dto.ContactListResponse{Items: items}, nil
}

// CreateContact inserta un contacto bajo una cuenta del tenant y devuelve la
// lista de contactos re-consultada.
func (uc *CRMUseCase) CreateContact(ctx context.Context, tenantID, accountID string, req dto.CreateContactRequest) (*dto.ContactListResponse, error) {
	account, err := uc.accountRepo.GetByID(ctx, tenantID, accountID)
	if err != nil {
		return nil, fmt.Errorf("consultando cuenta: %w", err)
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	c := &entity.Contact{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		AccountID: accountID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Position:  req.Position,
		CreatedAt: time.Now(),
	}
	if err := uc.contactRepo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("creando contacto: %w", err)
	}
	return uc.ListContacts(ctx, tenantID, accountID)
}

// ─────────────────────────────────────────────
// Deals
// ─────────────────────────────────────────────

// ListDeals consulta deals y etapas del pipeline en paralelo.
func (uc *CRMUseCase) ListDeals(ctx context.Context, tenantID string) (*dto.DealListResponse, error) {
	type dealsResult struct {
		deals []*entity.Deal
		err   error
	}
	type stagesResult struct {
		stages []*entity.DealStage
		err    error
	}

	dealsCh := make(chan dealsResult, 1)
	stagesCh := make(chan stagesResult, 1)

	go func() {
		ds, err := uc.dealRepo.ListByTenant(ctx, tenantID)
		dealsCh <- dealsResult{ds, err}
	}()
	go func() {
		ss, err := uc.dealRepo.ListStages(ctx, tenantID)
		stagesCh <- stagesResult{ss, err}
	}()

	dr := <-dealsCh
	sr := <-stagesCh

	if dr.err != nil {
		return nil, fmt.Errorf("listando deals: %w", dr.err)
	}
	if sr.err != nil {
		return nil, fmt.Errorf("listando etapas: %w", sr.err)
	}

	items := make([]dto.DealResponse, 0, len(dr.deals))
	for _, d := range dr.deals {
		items = append(items, toDealResponse(d))
	}
	stages := make([]dto.DealStageResponse, 0, len(sr.stages))
	for _, s := range sr.stages {
		stages = append(stages, dto.DealStageResponse{ID: s.ID, Name: s.Name, SortOrder: s.SortOrder})
	}
	return &dto.DealListResponse{Items: items, Stages: stages}, nil
}

// CreateDeal inserta un deal sobre una cuenta del tenant. El owner es el
// usuario autenticado; moneda por defecto USD y estado inicial open.
func (uc *CRMUseCase) CreateDeal(ctx context.Context, tenantID, ownerID string, req dto.CreateDealRequest) (*dto.DealListResponse, error) {
	account, err := uc.accountRepo.GetByID(ctx, tenantID, req.AccountID)
	if err != nil {
		return nil, fmt.Errorf("consultando cuenta: %w", err)
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}
	d := &entity.Deal{
		ID:               uuid.New().String(),
		TenantID:         tenantID,
		AccountID:        req.AccountID,
		PrimaryContactID: req.PrimaryContactID,
		Title:            req.Title,
		Amount:           req.Amount,
		Currency:         currency,
		StageID:          req.StageID,
		Status:           entity.DealStatusOpen,
		CloseDate:        req.CloseDate,
		OwnerID:          ownerID,
		CreatedAt:        time.Now(),
	}
	if err := uc.dealRepo.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("creando deal: %w", err)
	}
	return uc.ListDeals(ctx, tenantID)
}

func toAccountResponse(a *entity.Account) dto.AccountResponse {
	return dto.AccountResponse{
		ID:        a.ID,
		TenantID:  a.TenantID,
		Name:      a.Name,
		Website:   a.Website,
		Industry:  a.Industry,
		CreatedAt: a.CreatedAt,
	}
}

func toContactResponse(c *entity.Contact) dto.ContactResponse {
	return dto.ContactResponse{
		ID:        c.ID,
		AccountID: c.AccountID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		Position:  c.Position,
		CreatedAt: c.CreatedAt,
	}
}

func toDealResponse(d *entity.Deal) dto.DealResponse {
	return dto.DealResponse{
		ID:               d.ID,
		AccountID:        d.AccountID,
		PrimaryContactID: d.PrimaryContactID,
		Title:            d.Title,
		Amount:           d.Amount,
		Currency:         d.Currency,
		StageID:          d.StageID,
		Status:           d.Status,
		CloseDate:        d.CloseDate,
		OwnerID:          d.OwnerID,
		CreatedAt:        d.CreatedAt,
	}
}
