package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de gasto.
const (
	ExpenseRent          = "rent"
	ExpenseStockPurchase = "stock_purchase"
	ExpenseSalaries      = "salaries"
	ExpenseElectricity   = "electricity"
	ExpenseWater         = "water"
	ExpenseMarketing     = "marketing"
	ExpenseMaintenance   = "maintenance"
	ExpenseOther         = "other"
)

// Expense gasto operativo de la tienda.
type Expense struct {
	ID          int64
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	Category    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
