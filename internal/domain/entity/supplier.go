package entity

import "time"

// Supplier proveedor de mercadería.
type Supplier struct {
	ID               int64
	Name             string
	Phone            string
	Email            string
	ProductsSupplied string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
