package entity

import "time"

// Tenant representa una organización del sistema: la frontera de aislamiento.
// Toda fila de negocio lleva TenantID y solo es visible para sesiones de ese tenant.
type Tenant struct {
	ID               string
	Name             string
	SubscriptionTier string // free, pro, enterprise
	BillingStatus    string
	CreatedAt        time.Time
}
