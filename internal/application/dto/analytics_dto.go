package dto

import "github.com/shopspring/decimal"

// ── Query parameters ──────────────────────────────────────────────────────────

// RangeRequest rango de fechas YYYY-MM-DD; por defecto el mes en curso.
type RangeRequest struct {
	From string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To   string `query:"to" validate:"omitempty,datetime=2006-01-02"`
}

// SalesReportRequest filtros del reporte de ventas.
type SalesReportRequest struct {
	RangeRequest
	Cashier string `query:"cashier"` // nombre del cajero, contiene, sin mayúsculas
	Product string `query:"product"` // nombre de producto, contiene, sin mayúsculas
}

// ── Finanzas ──────────────────────────────────────────────────────────────────

// FinanceSummaryDTO respuesta de GET /api/finance/summary.
// Fórmulas: net_profit = revenue - expenses; margin_pct = net_profit / revenue * 100.
type FinanceSummaryDTO struct {
	From        string             `json:"from"`
	To          string             `json:"to"`
	Revenue     decimal.Decimal    `json:"revenue"`
	CostOfGoods decimal.Decimal    `json:"cost_of_goods"`
	GrossProfit decimal.Decimal    `json:"gross_profit"`
	Expenses    decimal.Decimal    `json:"expenses"`
	NetProfit   decimal.Decimal    `json:"net_profit"`
	MarginPct   decimal.Decimal    `json:"margin_pct"`
	SalesCount  int                `json:"sales_count"`
	Daily       []DailyFinanceDTO  `json:"daily"`
	ByCategory  []CategoryTotalDTO `json:"expenses_by_category"`
}

// DailyFinanceDTO punto de la serie diaria.
type DailyFinanceDTO struct {
	Date     string          `json:"date"`
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"`
}

// ── Reportes ──────────────────────────────────────────────────────────────────

// ProductMarginDTO fila de la tabla de márgenes por producto.
type ProductMarginDTO struct {
	ProductID  int64           `json:"product_id"`
	SKU        string          `json:"sku"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Price      decimal.Decimal `json:"price"`
	Cost       decimal.Decimal `json:"cost"`
	UnitProfit decimal.Decimal `json:"unit_profit"`
	MarginPct  decimal.Decimal `json:"margin_pct"`
	Stock      int             `json:"stock"`
}

// SalesReportDTO ventas filtradas con sus totales.
type SalesReportDTO struct {
	From  string          `json:"from"`
	To    string          `json:"to"`
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
	Sales []SaleResponse  `json:"sales"`
}

// CategoryRevenueDTO ingreso por categoría de producto.
type CategoryRevenueDTO struct {
	Category string          `json:"category"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// PaymentMethodDTO ventas por medio de pago.
type PaymentMethodDTO struct {
	Method string          `json:"method"`
	Count  int             `json:"count"`
	Total  decimal.Decimal `json:"total"`
}

// DailySalesDTO ventas por día.
type DailySalesDTO struct {
	Date  string          `json:"date"`
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// BreakdownDTO respuesta de GET /api/reports/breakdown.
type BreakdownDTO struct {
	From       string               `json:"from"`
	To         string               `json:"to"`
	ByCategory []CategoryRevenueDTO `json:"by_category"`
	ByPayment  []PaymentMethodDTO   `json:"by_payment"`
	ByDay      []DailySalesDTO      `json:"by_day"`
}
