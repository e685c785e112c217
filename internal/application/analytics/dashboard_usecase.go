// Package analytics contiene los casos de uso de indicadores de la tienda: dashboard,
// finanzas y reportes. Agrega sobre ventas y gastos leídos de los repositorios.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/PetShop-api/internal/application/dto"
	"github.com/jhoicas/PetShop-api/internal/application/sales"
	"github.com/jhoicas/PetShop-api/internal/application/usecase"
	"github.com/jhoicas/PetShop-api/internal/domain/entity"
	"github.com/jhoicas/PetShop-api/internal/domain/repository"
)

const (
	dashboardTopProducts = 5 // productos en el widget del dashboard
	dashboardRecentSales = 5
)

// Sources repositorios de lectura que usan los casos de uso de analítica.
type Sources struct {
	Products     repository.ProductRepository
	Sales        repository.SaleRepository
	Expenses     repository.ExpenseRepository
	Customers    repository.CustomerRepository
	Pets         repository.PetRepository
	Appointments repository.AppointmentRepository
}

// DashboardUseCase genera el resumen del día y del mes en curso.
type DashboardUseCase struct {
	src Sources
	now func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(src Sources) *DashboardUseCase {
	return &DashboardUseCase{src: src, now: time.Now}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Cinco lecturas en paralelo:
//  1. ventas del mes          → TodaySales, MonthlySales, MonthlyMargin, TopProducts
//  2. últimas ventas          → RecentSales
//  3. productos en stock bajo → LowStock
//  4. citas de hoy            → TodayAppointments
//  5. conteos                 → CustomersCount, PetsCount
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := uc.now()

	// ── Rangos de fecha ────────────────────────────────────────────────────────
	todayStart := startOfDay(now)
	todayEnd := todayStart.AddDate(0, 0, 1).Add(-time.Nanosecond)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	type salesResult struct {
		sales []*entity.Sale
		err   error
	}
	type productsResult struct {
		products []*entity.Product
		err      error
	}
	type apptsResult struct {
		appts []*entity.Appointment
		err   error
	}
	type countsResult struct {
		customers, pets int
		err             error
	}

	monthCh := make(chan salesResult, 1)
	recentCh := make(chan salesResult, 1)
	lowCh := make(chan productsResult, 1)
	apptCh := make(chan apptsResult, 1)
	countCh := make(chan countsResult, 1)

	go func() {
		s, err := uc.src.Sales.ListBetween(ctx, monthStart, todayEnd)
		monthCh <- salesResult{s, err}
	}()
	go func() {
		s, _, err := uc.src.Sales.List(ctx, repository.SaleFilter{Limit: dashboardRecentSales})
		recentCh <- salesResult{s, err}
	}()
	go func() {
		p, _, err := uc.src.Products.List(ctx, repository.ProductFilter{LowStock: true})
		lowCh <- productsResult{p, err}
	}()
	go func() {
		a, _, err := uc.src.Appointments.List(ctx, repository.AppointmentFilter{Date: &todayStart})
		apptCh <- apptsResult{a, err}
	}()
	go func() {
		var r countsResult
		r.customers, r.err = uc.src.Customers.Count(ctx)
		if r.err == nil {
			r.pets, r.err = uc.src.Pets.Count(ctx)
		}
		countCh <- r
	}()

	month := <-monthCh
	recent := <-recentCh
	low := <-lowCh
	appts := <-apptCh
	counts := <-countCh

	if month.err != nil {
		return nil, fmt.Errorf("dashboard: ventas del mes: %w", month.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("dashboard: últimas ventas: %w", recent.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", low.err)
	}
	if appts.err != nil {
		return nil, fmt.Errorf("dashboard: citas: %w", appts.err)
	}
	if counts.err != nil {
		return nil, fmt.Errorf("dashboard: conteos: %w", counts.err)
	}

	// ── Indicadores ────────────────────────────────────────────────────────────
	todaySales := decimal.Zero
	todayCount := 0
	for _, s := range month.sales {
		if !s.CreatedAt.Before(todayStart) && !s.CreatedAt.After(todayEnd) {
			todaySales = todaySales.Add(s.Total)
			todayCount++
		}
	}
	revenue, cost := totals(month.sales)
	margin := revenue.Sub(cost)

	out := &dto.DashboardSummaryDTO{
		TodaySales:        todaySales.Round(2),
		TodaySalesCount:   todayCount,
		MonthlySales:      revenue.Round(2),
		MonthlyMargin:     margin.Round(2),
		MonthlyMarginPct:  percent(margin, revenue),
		CustomersCount:    counts.customers,
		PetsCount:         counts.pets,
		LowStock:          make([]dto.ProductResponse, 0, len(low.products)),
		TopProducts:       topProducts(month.sales, dashboardTopProducts),
		RecentSales:       make([]dto.SaleResponse, 0, len(recent.sales)),
		TodayAppointments: make([]dto.AppointmentResponse, 0, len(appts.appts)),
		DateLabel:         monthLabel(now),
	}
	for _, p := range low.products {
		out.LowStock = append(out.LowStock, *usecase.ToProductResponse(p))
	}
	for _, s := range recent.sales {
		out.RecentSales = append(out.RecentSales, *sales.ToSaleResponse(s))
	}
	for _, a := range appts.appts {
		out.TodayAppointments = append(out.TodayAppointments, *usecase.ToAppointmentResponse(a))
	}
	return out, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
