package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeIN         = "IN"         // entrada de mercadería
	MovementTypeOUT        = "OUT"        // salida por venta
	MovementTypeADJUSTMENT = "ADJUSTMENT" // conteo físico, merma
)

// InventoryMovement asiento del kardex de un producto. Quantity es positivo en entradas,
// negativo en salidas y con signo en ajustes.
type InventoryMovement struct {
	ID        int64
	ProductID int64
	Type      string
	Quantity  int
	UnitCost  decimal.Decimal
	TotalCost decimal.Decimal // Quantity * UnitCost
	SaleID    *int64          // solo OUT
	Reason    string
	CreatedBy int64
	CreatedAt time.Time
}
