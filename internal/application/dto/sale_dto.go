package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutItemRequest línea del carrito: por product_id o por código de barras.
type CheckoutItemRequest struct {
	ProductID int64  `json:"product_id" validate:"required_without=Barcode"`
	Barcode   string `json:"barcode" validate:"required_without=ProductID,omitempty,max=50"`
	Quantity  int    `json:"quantity" validate:"gte=1"`
}

// CheckoutRequest body para POST /api/sales.
type CheckoutRequest struct {
	Items         []CheckoutItemRequest `json:"items" validate:"dive"`
	PaymentMethod string                `json:"payment_method" validate:"required,oneof=cash credit_card debit_card pix"`
	CustomerName  string                `json:"customer_name" validate:"max=200"`
}

// SaleItemDTO línea de venta con precio y costo congelados al momento de cobrar.
type SaleItemDTO struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// SaleResponse venta registrada.
type SaleResponse struct {
	ID            int64           `json:"id"`
	CashierID     int64           `json:"cashier_id"`
	CashierName   string          `json:"cashier_name"`
	CustomerName  string          `json:"customer_name"`
	Items         []SaleItemDTO   `json:"items"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"payment_method"`
	CreatedAt     time.Time       `json:"created_at"`
}

// SaleListResponse lista paginada de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
