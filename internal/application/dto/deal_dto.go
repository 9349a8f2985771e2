package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDealRequest entrada para crear un deal.
// Amount llega como string decimal para no perder precisión en el JSON.
type CreateDealRequest struct {
	AccountID        string          `json:"account_id" validate:"required"`
	PrimaryContactID *string         `json:"primary_contact_id"`
	Title            string          `json:"title" validate:"required,min=1,max=300"`
	Amount           decimal.Decimal `json:"amount"`
	Currency         string          `json:"currency" validate:"omitempty,len=3"`
	StageID          string          `json:"stage_id" validate:"required"`
	CloseDate        *time.Time      `json:"close_date"`
}

// DealResponse salida de un deal.
type DealResponse struct {
	ID               string          `json:"id"`
	AccountID        string          `json:"account_id"`
	PrimaryContactID *string         `json:"primary_contact_id,omitempty"`
	Title            string          `json:"title"`
	Amount           decimal.Decimal `json:"amount"`
	Currency         string          `json:"currency"`
	StageID          string          `json:"stage_id"`
	Status           string          `json:"status"`
	CloseDate        *time.Time      `json:"close_date,omitempty"`
	OwnerID          string          `json:"owner_id"`
	CreatedAt        time.Time       `json:"created_at"`
}

// DealStageResponse etapa del pipeline.
type DealStageResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
}

// DealListResponse deals del tenant más las etapas para pintar el pipeline.
type DealListResponse struct {
	Items  []DealResponse      `json:"items"`
	Stages []DealStageResponse `json:"stages"`
}
