package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name       string          `json:"name" validate:"required,min=1,max=200"`
	Brand      string          `json:"brand" validate:"max=100"`
	Category   string          `json:"category" validate:"required,max=100"`
	SKU        string          `json:"sku" validate:"required,min=1,max=100"`
	Barcode    string          `json:"barcode" validate:"omitempty,max=50"`
	Price      decimal.Decimal `json:"price"`
	Cost       decimal.Decimal `json:"cost"`
	Stock      int             `json:"stock" validate:"gte=0"`
	MinStock   int             `json:"min_stock" validate:"gte=0"`
	SupplierID *int64          `json:"supplier_id,omitempty"`
}

// UpdateProductRequest entrada para actualizar un producto (sin Cost ni Stock).
type UpdateProductRequest struct {
	Name       *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Brand      *string          `json:"brand" validate:"omitempty,max=100"`
	Category   *string          `json:"category" validate:"omitempty,min=1,max=100"`
	SKU        *string          `json:"sku" validate:"omitempty,min=1,max=100"`
	Barcode    *string          `json:"barcode" validate:"omitempty,max=50"`
	Price      *decimal.Decimal `json:"price"`
	MinStock   *int             `json:"min_stock" validate:"omitempty,gte=0"`
	SupplierID *int64           `json:"supplier_id"`
}

// ProductFilterRequest query de GET /api/inventory/products.
type ProductFilterRequest struct {
	Search   string `query:"search"`
	Category string `query:"category"`
	LowStock bool   `query:"low_stock"`
	PageRequest
}

// ProductResponse salida de un producto con sus indicadores derivados.
type ProductResponse struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Brand      string          `json:"brand"`
	Category   string          `json:"category"`
	SKU        string          `json:"sku"`
	Barcode    string          `json:"barcode"`
	Price      decimal.Decimal `json:"price"`
	Cost       decimal.Decimal `json:"cost"`
	Stock      int             `json:"stock"`
	MinStock   int             `json:"min_stock"`
	SupplierID *int64          `json:"supplier_id,omitempty"`
	LowStock   bool            `json:"low_stock"`   // stock <= min_stock
	UnitProfit decimal.Decimal `json:"unit_profit"` // price - cost
	MarginPct  decimal.Decimal `json:"margin_pct"`  // (price - cost) / price * 100
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
