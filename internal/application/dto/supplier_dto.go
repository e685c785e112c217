package dto

import "time"

// SupplierRequest alta y edición de proveedor.
type SupplierRequest struct {
	Name             string `json:"name" validate:"required,min=1,max=200"`
	Phone            string `json:"phone" validate:"max=30"`
	Email            string `json:"email" validate:"omitempty,email"`
	ProductsSupplied string `json:"products_supplied" validate:"max=500"`
}

type SupplierResponse struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Phone            string    `json:"phone"`
	Email            string    `json:"email"`
	ProductsSupplied string    `json:"products_supplied"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
