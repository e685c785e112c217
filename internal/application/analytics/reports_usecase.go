package analytics

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/PetShop-api/internal/application/dto"
	"github.com/jhoicas/PetShop-api/internal/application/sales"
	"github.com/jhoicas/PetShop-api/internal/application/usecase"
	"github.com/jhoicas/PetShop-api/internal/domain/entity"
	"github.com/jhoicas/PetShop-api/internal/domain/repository"
)

// ReportsUseCase reportes de administración: márgenes, ventas filtradas y desgloses.
type ReportsUseCase struct {
	src Sources
	now func() time.Time
}

// NewReportsUseCase construye el caso de uso.
func NewReportsUseCase(src Sources) *ReportsUseCase {
	return &ReportsUseCase{src: src, now: time.Now}
}

// ProductMargins tabla de márgenes de todo el catálogo, mayor margen primero.
func (uc *ReportsUseCase) ProductMargins(ctx context.Context) ([]dto.ProductMarginDTO, error) {
	list, _, err := uc.src.Products.List(ctx, repository.ProductFilter{})
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductMarginDTO, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ProductMarginDTO{
			ProductID:  p.ID,
			SKU:        p.SKU,
			Name:       p.Name,
			Category:   p.Category,
			Price:      p.Price,
			Cost:       p.Cost,
			UnitProfit: p.UnitProfit().Round(2),
			MarginPct:  p.MarginPct().Round(2),
			Stock:      p.Stock,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].MarginPct.Equal(out[j].MarginPct) {
			return out[i].MarginPct.GreaterThan(out[j].MarginPct)
		}
		return out[i].ProductID < out[j].ProductID
	})
	return out, nil
}

// Sales ventas del rango filtradas por nombre de cajero y por nombre de producto
// (contiene, sin distinguir mayúsculas). Más recientes primero.
func (uc *ReportsUseCase) Sales(ctx context.Context, in dto.SalesReportRequest) (*dto.SalesReportDTO, error) {
	from, to, err := usecase.DateRange(in.From, in.To, uc.now())
	if err != nil {
		return nil, err
	}
	list, err := uc.src.Sales.ListBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	cashier := strings.TrimSpace(in.Cashier)
	product := strings.TrimSpace(in.Product)

	out := &dto.SalesReportDTO{
		From:  from.Format(dto.DateLayout),
		To:    to.Format(dto.DateLayout),
		Total: decimal.Zero,
		Sales: []dto.SaleResponse{},
	}
	for _, s := range list {
		if cashier != "" && !containsFold(s.CashierName, cashier) {
			continue
		}
		if product != "" && !hasProduct(s, product) {
			continue
		}
		out.Sales = append(out.Sales, *sales.ToSaleResponse(s))
		out.Total = out.Total.Add(s.Total)
	}
	out.Count = len(out.Sales)
	out.Total = out.Total.Round(2)
	return out, nil
}

// Breakdown ingresos del rango por categoría, medio de pago y día.
func (uc *ReportsUseCase) Breakdown(ctx context.Context, in dto.RangeRequest) (*dto.BreakdownDTO, error) {
	from, to, err := usecase.DateRange(in.From, in.To, uc.now())
	if err != nil {
		return nil, err
	}
	list, err := uc.src.Sales.ListBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return &dto.BreakdownDTO{
		From:       from.Format(dto.DateLayout),
		To:         to.Format(dto.DateLayout),
		ByCategory: byCategory(list),
		ByPayment:  byPayment(list),
		ByDay:      byDay(list),
	}, nil
}

func hasProduct(s *entity.Sale, name string) bool {
	for _, it := range s.Items {
		if containsFold(it.Name, name) {
			return true
		}
	}
	return false
}
