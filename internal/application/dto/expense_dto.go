package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseRequest alta y edición de gasto. Amount debe ser > 0 (se valida en el caso de uso).
type ExpenseRequest struct {
	Description string          `json:"description" validate:"required,max=200"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date" validate:"required,datetime=2006-01-02"`
	Category    string          `json:"category" validate:"required,oneof=rent stock_purchase salaries electricity water marketing maintenance other"`
}

type ExpenseResponse struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Category    string          `json:"category"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type ExpenseListResponse struct {
	Items []ExpenseResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CategoryTotalDTO total gastado en una categoría.
type CategoryTotalDTO struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

// ExpenseSummaryResponse totales por categoría en un rango.
type ExpenseSummaryResponse struct {
	From       string             `json:"from"`
	To         string             `json:"to"`
	Total      decimal.Decimal    `json:"total"`
	ByCategory []CategoryTotalDTO `json:"by_category"`
}
