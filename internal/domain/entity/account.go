package entity

import "time"

// Account es la cuenta comercial raíz de la jerarquía CRM (tiene contactos y deals).
type Account struct {
	ID        string
	TenantID  string
	Name      string
	Website   string
	Industry  string
	CreatedAt time.Time
}

// Contact pertenece a una Account.
type Contact struct {
	ID        string
	TenantID  string
	AccountID string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Position  string
	CreatedAt time.Time
}
