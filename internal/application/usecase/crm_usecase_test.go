package usecase

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// ─────────────────────────────────────────────
// Fakes en memoria
// ─────────────────────────────────────────────

type fakeAccountRepo struct {
	accounts []*entity.Account
}

func (f *fakeAccountRepo) Create(_ context.Context, a *entity.Account) error {
	f.accounts = append(f.accounts, a)
	return nil
}

func (f *fakeAccountRepo) GetByID(_ context.Context, tenantID, id string) (*entity.Account, error) {
	for _, a := range f.accounts {
		if a.TenantID == tenantID && a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) ListByTenant(_ context.Context, tenantID string) ([]*entity.Account, error) {
	var out []*entity.Account
	for _, a := range f.accounts {
		if a.TenantID == tenantID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeContactRepo struct {
	contacts []*entity.Contact
}

func (f *fakeContactRepo) Create(_ context.Context, c *entity.Contact) error {
	f.contacts = append(f.contacts, c)
	return nil
}

func (f *fakeContactRepo) ListByAccount(_ context.Context, tenantID, accountID string) ([]*entity.Contact, error) {
	var out []*entity.Contact
	for _, c := range f.contacts {
		if c.TenantID == tenantID && c.AccountID == accountID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeDealRepo struct {
	deals []*entity.Deal
}

func (f *fakeDealRepo) Create(_ context.Context, d *entity.Deal) error {
	f.deals = append(f.deals, d)
	return nil
}

func (f *fakeDealRepo) GetByID(_ context.Context, tenantID, id string) (*entity.Deal, error) {
	for _, d := range f.deals {
		if d.TenantID == tenantID && d.ID == id {
			return d, nil
		}
	}
	return nil, nil
}

func (f *fakeDealRepo) ListByTenant(_ context.Context, tenantID string) ([]*entity.Deal, error) {
	var out []*entity.Deal
	for _, d := range f.deals {
		if d.TenantID == tenantID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDealRepo) ListStages(_ context.Context, _ string) ([]*entity.DealStage, error) {
	return nil, nil
}

type fakeAttachmentRepo struct {
	rows []*entity.Attachment
}

func (f *fakeAttachmentRepo) Create(_ context.Context, a *entity.Attachment) error {
	f.rows = append(f.rows, a)
	return nil
}

func (f *fakeAttachmentRepo) GetByID(_ context.Context, tenantID, id string) (*entity.Attachment, error) {
	for _, a := range f.rows {
		if a.TenantID == tenantID && a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAttachmentRepo) ListByLink(_ context.Context, tenantID string, link entity.RecordLink) ([]*entity.Attachment, error) {
	var out []*entity.Attachment
	for _, a := range f.rows {
		if a.TenantID == tenantID && a.Link == link {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeObjectStore struct{}

func (fakeObjectStore) Put(_ context.Context, tenantID, objectKey string, _ io.Reader, _ int64, _ string) (string, error) {
	return tenantID + "/" + objectKey, nil
}

func (fakeObjectStore) PresignedURL(_ context.Context, objectKey string, _ time.Duration) (string, error) {
	return "https://storage.local/" + objectKey, nil
}

func setupCRM(t *testing.T) (*CRMUseCase, *fakeAccountRepo, *fakeContactRepo, *fakeDealRepo) {
	t.Helper()
	accounts := &fakeAccountRepo{accounts: []*entity.Account{
		{ID: "a1", TenantID: "tenant-1", Name: "Acme", CreatedAt: time.Now()},
	}}
	contacts := &fakeContactRepo{}
	deals := &fakeDealRepo{}
	return NewCRMUseCase(accounts, contacts, deals), accounts, contacts, deals
}

// ─────────────────────────────────────────────
// Sello de created_at al crear
// ─────────────────────────────────────────────

// Las listas del CRM se ordenan por created_at; cada creación debe estampar
// el campo antes de persistir, como hace el alta de perfiles.

func TestCreateAccount_PersisteCreatedAtNoCero(t *testing.T) {
	uc, accounts, _, _ := setupCRM(t)

	_, err := uc.CreateAccount(context.Background(), "tenant-1", dto.CreateAccountRequest{Name: "Globex"})

	require.NoError(t, err)
	require.Len(t, accounts.accounts, 2)
	assert.False(t, accounts.accounts[1].CreatedAt.IsZero(), "la cuenta debe persistirse con created_at estampado")
}

func TestCreateContact_PersisteCreatedAtNoCero(t *testing.T) {
	uc, _, contacts, _ := setupCRM(t)

	_, err := uc.CreateContact(context.Background(), "tenant-1", "a1", dto.CreateContactRequest{FirstName: "Ana"})

	require.NoError(t, err)
	require.Len(t, contacts.contacts, 1)
	assert.False(t, contacts.contacts[0].CreatedAt.IsZero(), "el contacto debe persistirse con created_at estampado")
}

func TestCreateDeal_PersisteCreatedAtYOwner(t *testing.T) {
	uc, _, _, deals := setupCRM(t)

	_, err := uc.CreateDeal(context.Background(), "tenant-1", "user-1", dto.CreateDealRequest{
		AccountID: "a1",
		Title:     "Renovación anual",
		StageID:   "s1",
	})

	require.NoError(t, err)
	require.Len(t, deals.deals, 1)
	assert.False(t, deals.deals[0].CreatedAt.IsZero(), "el deal debe persistirse con created_at estampado")
	assert.Equal(t, "user-1", deals.deals[0].OwnerID)
	assert.Equal(t, "USD", deals.deals[0].Currency) // moneda por defecto
}

func TestUploadAttachment_PersisteCreatedAtNoCero(t *testing.T) {
	repo := &fakeAttachmentRepo{}
	uc := NewAttachmentUseCase(repo, fakeObjectStore{})

	_, err := uc.Upload(context.Background(), "tenant-1", "user-1", "contrato.pdf", 4,
		"application/pdf", strings.NewReader("data"), dto.LinkDTO{Kind: entity.LinkKindDeal, TargetID: "d1"})

	require.NoError(t, err)
	require.Len(t, repo.rows, 1)
	assert.False(t, repo.rows[0].CreatedAt.IsZero(), "el adjunto debe persistirse con created_at estampado")
}
