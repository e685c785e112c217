package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RestockRequest body para POST /api/inventory/products/{id}/restock (entrada de mercadería).
type RestockRequest struct {
	Quantity int             `json:"quantity" validate:"required,gt=0"`
	UnitCost decimal.Decimal `json:"unit_cost"`
}

// AdjustStockRequest corrección manual de stock (conteo físico, merma).
type AdjustStockRequest struct {
	Delta  int    `json:"delta" validate:"required,ne=0"`
	Reason string `json:"reason" validate:"required,max=200"`
}

// ReplenishmentSuggestionDTO sugerencia de reposición para un producto con stock bajo.
type ReplenishmentSuggestionDTO struct {
	ProductID          int64           `json:"product_id"`
	SKU                string          `json:"sku"`
	ProductName        string          `json:"product_name"`
	SupplierID         *int64          `json:"supplier_id,omitempty"`
	CurrentStock       int             `json:"current_stock"`
	MinStock           int             `json:"min_stock"`
	IdealStock         int             `json:"ideal_stock"`          // MinStock * 2
	SuggestedOrderQty  int             `json:"suggested_order_qty"`  // IdealStock - CurrentStock
	UnitCost           decimal.Decimal `json:"unit_cost"`            // costo promedio ponderado
	EstimatedOrderCost decimal.Decimal `json:"estimated_order_cost"` // SuggestedOrderQty * UnitCost
	UnitsSoldLast30d   int             `json:"units_sold_last_30d"`
	Priority           int             `json:"priority"` // 1 = más urgente
}

// MovementFilter filtros del kardex de un producto. Fechas YYYY-MM-DD, to inclusive.
type MovementFilter struct {
	From string `query:"from"`
	To   string `query:"to"`
	PageRequest
}

// MovementResponse asiento del kardex.
type MovementResponse struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"product_id"`
	Type      string          `json:"type"` // IN, OUT, ADJUSTMENT
	Quantity  int             `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	TotalCost decimal.Decimal `json:"total_cost"`
	SaleID    *int64          `json:"sale_id,omitempty"`
	Reason    string          `json:"reason,omitempty"`
	CreatedBy int64           `json:"created_by,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// MovementListResponse página del kardex.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
