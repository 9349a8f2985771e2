package dto

import "time"

// CreateAccountRequest entrada para crear una cuenta comercial.
type CreateAccountRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Website  string `json:"website"`
	Industry string `json:"industry"`
}

// AccountResponse salida de una cuenta.
type AccountResponse struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Name      string    `json:"name"`
	Website   string    `json:"website"`
	Industry  string    `json:"industry"`
	CreatedAt time.Time `json:"created_at"`
}

// AccountListResponse lista de cuentas del tenant.
type AccountListResponse struct {
	Items []AccountResponse `json:"items"`
}

// CreateContactRequest entrada para crear un contacto bajo una cuenta.
type CreateContactRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone"`
	Position  string `json:"position"`
}

// ContactResponse salida de un contacto.
type ContactResponse struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Position  string    `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactListResponse contactos de una cuenta.
type ContactListResponse struct {
	Items []ContactResponse `json:"items"`
}
