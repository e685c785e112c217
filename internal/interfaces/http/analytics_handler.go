package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/PetShop-api/internal/application/analytics"
	"github.com/jhoicas/PetShop-api/internal/application/dto"
)

// AnalyticsHandler vistas de finanzas y reportes.
type AnalyticsHandler struct {
	finance *analytics.FinanceUseCase
	reports *analytics.ReportsUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(finance *analytics.FinanceUseCase, reports *analytics.ReportsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{finance: finance, reports: reports}
}

func rangeQuery(c *fiber.Ctx) dto.RangeRequest {
	return dto.RangeRequest{From: c.Query("from"), To: c.Query("to")}
}

// FinanceSummary godoc
// @Summary      Resultado del período
// @Description  Ingresos, costo de mercadería, gastos y utilidad neta con serie diaria.
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Desde (YYYY-MM-DD, default inicio de mes)"
// @Param        to    query  string  false  "Hasta inclusive (YYYY-MM-DD, default hoy)"
// @Success      200  {object}  dto.FinanceSummaryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/finance/summary [get]
func (h *AnalyticsHandler) FinanceSummary(c *fiber.Ctx) error {
	out, err := h.finance.Summary(c.UserContext(), rangeQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ProductMargins godoc
// @Summary      Margen por producto
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductMarginDTO
// @Router       /api/reports/margins [get]
func (h *AnalyticsHandler) ProductMargins(c *fiber.Ctx) error {
	out, err := h.reports.ProductMargins(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SalesReport godoc
// @Summary      Reporte de ventas
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from     query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to       query  string  false  "Hasta inclusive (YYYY-MM-DD)"
// @Param        cashier  query  string  false  "Nombre del cajero"
// @Param        product  query  string  false  "Nombre del producto"
// @Success      200  {object}  dto.SalesReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/sales [get]
func (h *AnalyticsHandler) SalesReport(c *fiber.Ctx) error {
	out, err := h.reports.Sales(c.UserContext(), dto.SalesReportRequest{
		RangeRequest: rangeQuery(c),
		Cashier:      c.Query("cashier"),
		Product:      c.Query("product"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Breakdown godoc
// @Summary      Ingresos por categoría, medio de pago y día
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to    query  string  false  "Hasta inclusive (YYYY-MM-DD)"
// @Success      200  {object}  dto.BreakdownDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/breakdown [get]
func (h *AnalyticsHandler) Breakdown(c *fiber.Ctx) error {
	out, err := h.reports.Breakdown(c.UserContext(), rangeQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
