package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/PetShop-api/internal/application/dto"
	"github.com/jhoicas/PetShop-api/internal/application/usecase"
	"github.com/jhoicas/PetShop-api/internal/domain"
	"github.com/jhoicas/PetShop-api/internal/domain/entity"
)

// maxRangeDays rango máximo de la serie diaria.
const maxRangeDays = 366

// FinanceUseCase resultado económico de un período: ingresos, costo, gastos y utilidad.
type FinanceUseCase struct {
	src Sources
	now func() time.Time
}

// NewFinanceUseCase construye el caso de uso.
func NewFinanceUseCase(src Sources) *FinanceUseCase {
	return &FinanceUseCase{src: src, now: time.Now}
}

// Summary resumen financiero entre from y to (YYYY-MM-DD). Sin fechas: mes en curso.
// net_profit = revenue - expenses; margin_pct = net_profit / revenue * 100 (0 sin ingresos).
func (uc *FinanceUseCase) Summary(ctx context.Context, in dto.RangeRequest) (*dto.FinanceSummaryDTO, error) {
	from, to, err := usecase.DateRange(in.From, in.To, uc.now())
	if err != nil {
		return nil, err
	}
	if to.Sub(from) > maxRangeDays*24*time.Hour {
		return nil, fmt.Errorf("%w: el rango no puede superar %d días", domain.ErrInvalidInput, maxRangeDays)
	}

	var (
		sales    []*entity.Sale
		expenses []*entity.Expense
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sales, err = uc.src.Sales.ListBetween(gctx, from, to)
		if err != nil {
			return fmt.Errorf("finanzas: ventas: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		expenses, err = uc.src.Expenses.ListBetween(gctx, from, to)
		if err != nil {
			return fmt.Errorf("finanzas: gastos: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	revenue, cost := totals(sales)
	expenseTotal, byCat := usecase.SumByCategory(expenses)
	net := revenue.Sub(expenseTotal)

	return &dto.FinanceSummaryDTO{
		From:        from.Format(dto.DateLayout),
		To:          to.Format(dto.DateLayout),
		Revenue:     revenue.Round(2),
		CostOfGoods: cost.Round(2),
		GrossProfit: revenue.Sub(cost).Round(2),
		Expenses:    expenseTotal,
		NetProfit:   net.Round(2),
		MarginPct:   percent(net, revenue),
		SalesCount:  len(sales),
		Daily:       dailySeries(from, to, sales, expenses),
		ByCategory:  byCat,
	}, nil
}

// dailySeries un punto por cada día del rango, incluidos los días sin movimiento.
func dailySeries(from, to time.Time, sales []*entity.Sale, expenses []*entity.Expense) []dto.DailyFinanceDTO {
	rev := map[string]decimal.Decimal{}
	exp := map[string]decimal.Decimal{}
	for _, s := range sales {
		k := s.CreatedAt.Format(dto.DateLayout)
		rev[k] = rev[k].Add(s.Total)
	}
	for _, e := range expenses {
		k := e.Date.Format(dto.DateLayout)
		exp[k] = exp[k].Add(e.Amount)
	}
	var out []dto.DailyFinanceDTO
	for d := startOfDay(from); !d.After(to); d = d.AddDate(0, 0, 1) {
		k := d.Format(dto.DateLayout)
		r, e := rev[k], exp[k]
		out = append(out, dto.DailyFinanceDTO{
			Date:     k,
			Revenue:  r.Round(2),
			Expenses: e.Round(2),
			Profit:   r.Sub(e).Round(2),
		})
	}
	return out
}
