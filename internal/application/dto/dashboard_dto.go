package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// KPIs del día y del mes en curso, alertas de stock y agenda de hoy.
type DashboardSummaryDTO struct {
	// Día actual (00:00 – 23:59)
	TodaySales      decimal.Decimal `json:"today_sales"`
	TodaySalesCount int             `json:"today_sales_count"`

	// Mes en curso (día 1 – hoy)
	MonthlySales     decimal.Decimal `json:"monthly_sales"`
	MonthlyMargin    decimal.Decimal `json:"monthly_margin"`     // ingresos - costo de lo vendido
	MonthlyMarginPct decimal.Decimal `json:"monthly_margin_pct"` // margin / sales * 100

	CustomersCount int `json:"customers_count"`
	PetsCount      int `json:"pets_count"`

	LowStock          []ProductResponse     `json:"low_stock"`
	TopProducts       []TopProductDTO       `json:"top_products"`
	RecentSales       []SaleResponse        `json:"recent_sales"`
	TodayAppointments []AppointmentResponse `json:"today_appointments"`

	DateLabel string `json:"date_label"` // ej: "Octubre 2026"
}

// TopProductDTO producto más vendido del mes por ingreso.
type TopProductDTO struct {
	ProductID    int64           `json:"product_id"`
	ProductName  string          `json:"product_name"`
	Category     string          `json:"category"`
	QuantitySold int             `json:"quantity_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}
