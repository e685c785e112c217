package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Medios de pago aceptados en caja.
const (
	PaymentCash       = "cash"
	PaymentCreditCard = "credit_card"
	PaymentDebitCard  = "debit_card"
	PaymentPix        = "pix"
)

// SaleItem línea de venta. Precio y costo se copian del producto al momento de la venta.
type SaleItem struct {
	ProductID int64
	Name      string
	Category  string
	Quantity  int
	UnitPrice decimal.Decimal
	UnitCost  decimal.Decimal
}

// Subtotal precio * cantidad.
func (i SaleItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CostTotal costo * cantidad.
func (i SaleItem) CostTotal() decimal.Decimal {
	return i.UnitCost.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Sale venta registrada en el punto de venta.
type Sale struct {
	ID            int64
	CashierID     int64
	CashierName   string
	CustomerName  string
	Items         []SaleItem
	Total         decimal.Decimal
	PaymentMethod string
	CreatedAt     time.Time
}

// Cost costo de mercadería vendida.
func (s *Sale) Cost() decimal.Decimal {
	total := decimal.Zero
	for _, it := range s.Items {
		total = total.Add(it.CostTotal())
	}
	return total
}
