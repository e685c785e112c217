package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/PetShop-api/internal/application/dto"
	"github.com/jhoicas/PetShop-api/internal/domain"
	"github.com/jhoicas/PetShop-api/internal/infrastructure/memory"
	"github.com/jhoicas/PetShop-api/internal/infrastructure/seed"
)

// fixedNow mediodía del 18 de marzo: las ventas del dataset (hoy, -1, -2, -3) caen en el mes.
var fixedNow = time.Date(2026, 3, 18, 12, 0, 0, 0, time.Local)

func clock() time.Time { return fixedNow }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sources(t *testing.T) Sources {
	t.Helper()
	r := memory.NewRepos()
	require.NoError(t, seed.Load(context.Background(), r, fixedNow))
	return Sources{
		Products:     r.Products,
		Sales:        r.Sales,
		Expenses:     r.Expenses,
		Customers:    r.Customers,
		Pets:         r.Pets,
		Appointments: r.Appointments,
	}
}

func TestDashboard_GetSummary(t *testing.T) {
	uc := NewDashboardUseCase(sources(t))
	uc.now = clock

	got, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.True(t, got.TodaySales.Equal(dec("234.90")), got.TodaySales.String())
	assert.Equal(t, 1, got.TodaySalesCount)
	assert.True(t, got.MonthlySales.Equal(dec("987.50")), got.MonthlySales.String())
	assert.True(t, got.MonthlyMargin.Equal(dec("378.50")), got.MonthlyMargin.String())
	assert.True(t, got.MonthlyMarginPct.Equal(dec("38.33")), got.MonthlyMarginPct.String())
	assert.Equal(t, 3, got.CustomersCount)
	assert.Equal(t, 3, got.PetsCount)
	assert.Equal(t, "Marzo 2026", got.DateLabel)

	require.Len(t, got.LowStock, 1)
	assert.Equal(t, "PS-001", got.LowStock[0].SKU)

	require.Len(t, got.TopProducts, dashboardTopProducts)
	assert.Equal(t, "Comedero Automático", got.TopProducts[0].ProductName)
	assert.True(t, got.TopProducts[0].TotalRevenue.Equal(dec("199")))
	assert.Equal(t, int64(1), got.TopProducts[1].ProductID)

	require.Len(t, got.RecentSales, dashboardRecentSales)
	assert.Equal(t, fixedNow.Day(), got.RecentSales[0].CreatedAt.Day())

	require.Len(t, got.TodayAppointments, 2)
	assert.Equal(t, "10:00", got.TodayAppointments[0].Time)
}

func TestDashboard_SinDatos(t *testing.T) {
	r := memory.NewRepos()
	uc := NewDashboardUseCase(Sources{
		Products: r.Products, Sales: r.Sales, Expenses: r.Expenses,
		Customers: r.Customers, Pets: r.Pets, Appointments: r.Appointments,
	})
	uc.now = clock

	got, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.True(t, got.MonthlySales.IsZero())
	assert.True(t, got.MonthlyMarginPct.IsZero())
	assert.NotNil(t, got.LowStock)
	assert.Empty(t, got.TopProducts)
}

func TestFinance_Summary(t *testing.T) {
	uc := NewFinanceUseCase(sources(t))
	uc.now = clock

	got, err := uc.Summary(context.Background(), dto.RangeRequest{})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01", got.From)
	assert.Equal(t, "2026-03-18", got.To)
	assert.True(t, got.Revenue.Equal(dec("987.50")))
	assert.True(t, got.CostOfGoods.Equal(dec("609")))
	assert.True(t, got.GrossProfit.Equal(dec("378.50")))
	assert.True(t, got.Expenses.Equal(dec("14030")))
	assert.True(t, got.NetProfit.Equal(dec("-13042.50")), got.NetProfit.String())
	assert.True(t, got.MarginPct.Equal(dec("-1320.76")), got.MarginPct.String())
	assert.Equal(t, 5, got.SalesCount)

	require.Len(t, got.Daily, 18)
	assert.Equal(t, "2026-03-01", got.Daily[0].Date)
	assert.True(t, got.Daily[0].Profit.Equal(dec("-14030")))
	assert.True(t, got.Daily[17].Revenue.Equal(dec("234.90")))
	assert.True(t, got.Daily[5].Revenue.IsZero())

	require.NotEmpty(t, got.ByCategory)
	assert.Equal(t, "salaries", got.ByCategory[0].Category)
}

func TestFinance_SinIngresosMargenCero(t *testing.T) {
	uc := NewFinanceUseCase(sources(t))
	uc.now = clock

	got, err := uc.Summary(context.Background(), dto.RangeRequest{From: "2026-02-01", To: "2026-02-28"})
	require.NoError(t, err)
	assert.True(t, got.Revenue.IsZero())
	assert.True(t, got.MarginPct.IsZero())
	assert.Len(t, got.Daily, 28)

	_, err = uc.Summary(context.Background(), dto.RangeRequest{From: "2024-01-01", To: "2026-01-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReports_ProductMargins(t *testing.T) {
	uc := NewReportsUseCase(sources(t))

	got, err := uc.ProductMargins(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 8)
	assert.Equal(t, "KG-001", got[0].SKU)
	assert.True(t, got[0].MarginPct.Equal(dec("49.83")), got[0].MarginPct.String())
	assert.Equal(t, "PS-001", got[7].SKU)
	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].MarginPct.GreaterThan(got[i-1].MarginPct))
	}
}

func TestReports_SalesFiltros(t *testing.T) {
	uc := NewReportsUseCase(sources(t))
	uc.now = clock
	ctx := context.Background()

	tests := []struct {
		name      string
		in        dto.SalesReportRequest
		wantCount int
		wantTotal string
	}{
		{"sin filtros", dto.SalesReportRequest{}, 5, "987.50"},
		{"por cajero", dto.SalesReportRequest{Cashier: "MARIA"}, 2, "463.90"},
		{"por producto", dto.SalesReportRequest{Product: "antipulgas"}, 2, "484.80"},
		{"cajero y producto", dto.SalesReportRequest{Cashier: "joão", Product: "collar"}, 1, "234.90"},
		{"rango de un día", dto.SalesReportRequest{RangeRequest: dto.RangeRequest{From: "2026-03-17", To: "2026-03-17"}}, 2, "339.60"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uc.Sales(ctx, tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, got.Count)
			assert.True(t, got.Total.Equal(dec(tt.wantTotal)), got.Total.String())
		})
	}
}

func TestReports_Breakdown(t *testing.T) {
	uc := NewReportsUseCase(sources(t))
	uc.now = clock

	got, err := uc.Breakdown(context.Background(), dto.RangeRequest{})
	require.NoError(t, err)

	require.Len(t, got.ByPayment, 4)
	assert.Equal(t, "credit_card", got.ByPayment[0].Method)
	assert.Equal(t, 2, got.ByPayment[0].Count)
	assert.True(t, got.ByPayment[0].Total.Equal(dec("448.90")))
	assert.Equal(t, "cash", got.ByPayment[3].Method)

	require.Len(t, got.ByCategory, 4)
	assert.Equal(t, "Accesorios", got.ByCategory[0].Category)
	assert.Equal(t, 5, got.ByCategory[0].Quantity)
	assert.True(t, got.ByCategory[0].Revenue.Equal(dec("463")))

	require.Len(t, got.ByDay, 4)
	assert.Equal(t, "2026-03-15", got.ByDay[0].Date)
	assert.Equal(t, 2, got.ByDay[2].Count)
}
