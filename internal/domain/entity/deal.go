package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un deal.
const (
	DealStatusOpen = "open"
	DealStatusWon  = "won"
	DealStatusLost = "lost"
)

// DealStage es una etapa del pipeline de ventas (Lead, Negotiation, Contract...).
type DealStage struct {
	ID        string
	TenantID  string
	Name      string
	SortOrder int
}

// Deal es una oportunidad de venta sobre una Account.
// Amount es NUMERIC(15,2) en la DB; se mapea a decimal vía el codec del pool.
type Deal struct {
	ID               string
	TenantID         string
	AccountID        string
	PrimaryContactID *string
	Title            string
	Amount           decimal.Decimal
	Currency         string // ISO 4217, default USD
	StageID          string
	Status           string // open | won | lost
	CloseDate        *time.Time
	OwnerID          string
	CreatedAt        time.Time
}
