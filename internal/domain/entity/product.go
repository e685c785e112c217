package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto del inventario de la tienda.
type Product struct {
	ID         int64
	Name       string
	Brand      string
	Category   string
	SKU        string // código interno, único
	Barcode    string // EAN, único si no está vacío
	Price      decimal.Decimal
	Cost       decimal.Decimal
	Stock      int
	MinStock   int
	SupplierID *int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

var hundred = decimal.NewFromInt(100)

// LowStock informa si el stock llegó al mínimo configurado.
func (p *Product) LowStock() bool {
	return p.Stock <= p.MinStock
}

// UnitProfit ganancia por unidad vendida.
func (p *Product) UnitProfit() decimal.Decimal {
	return p.Price.Sub(p.Cost)
}

// MarginPct margen sobre precio de venta en porcentaje; 0 si el precio es 0.
func (p *Product) MarginPct() decimal.Decimal {
	if p.Price.IsZero() {
		return decimal.Zero
	}
	return p.UnitProfit().Div(p.Price).Mul(hundred)
}
