package dto

import "time"

// AddressDTO dirección postal del cliente.
type AddressDTO struct {
	Street     string `json:"street" validate:"max=200"`
	Number     string `json:"number" validate:"max=20"`
	Complement string `json:"complement" validate:"max=100"`
	District   string `json:"district" validate:"max=100"`
	City       string `json:"city" validate:"max=100"`
}

// CustomerRequest alta y edición de cliente.
type CustomerRequest struct {
	Name        string     `json:"name" validate:"required,min=1,max=200"`
	Phone       string     `json:"phone" validate:"max=30"`
	Email       string     `json:"email" validate:"omitempty,email"`
	Address     AddressDTO `json:"address"`
	BirthDate   string     `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	CompanyName string     `json:"company_name" validate:"max=200"`
	TradeName   string     `json:"trade_name" validate:"max=200"`
	Notes       string     `json:"notes" validate:"max=1000"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Phone       string     `json:"phone"`
	Email       string     `json:"email"`
	Address     AddressDTO `json:"address"`
	BirthDate   string     `json:"birth_date,omitempty"`
	CompanyName string     `json:"company_name,omitempty"`
	TradeName   string     `json:"trade_name,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CustomerListResponse lista paginada de clientes.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
