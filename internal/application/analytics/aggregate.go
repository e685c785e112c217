package analytics

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/PetShop-api/internal/application/dto"
	"github.com/jhoicas/PetShop-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// totals ingreso y costo de mercadería vendida.
func totals(list []*entity.Sale) (revenue, cost decimal.Decimal) {
	revenue, cost = decimal.Zero, decimal.Zero
	for _, s := range list {
		revenue = revenue.Add(s.Total)
		cost = cost.Add(s.Cost())
	}
	return revenue, cost
}

// percent part / whole * 100 redondeado a 2 decimales; 0 si whole es 0.
func percent(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred).Round(2)
}

// topProducts productos por ingreso descendente.
func topProducts(list []*entity.Sale, n int) []dto.TopProductDTO {
	acc := map[int64]*dto.TopProductDTO{}
	for _, s := range list {
		for _, it := range s.Items {
			t, ok := acc[it.ProductID]
			if !ok {
				t = &dto.TopProductDTO{ProductID: it.ProductID, ProductName: it.Name, Category: it.Category, TotalRevenue: decimal.Zero}
				acc[it.ProductID] = t
			}
			t.QuantitySold += it.Quantity
			t.TotalRevenue = t.TotalRevenue.Add(it.Subtotal())
		}
	}
	out := make([]dto.TopProductDTO, 0, len(acc))
	for _, t := range acc {
		t.TotalRevenue = t.TotalRevenue.Round(2)
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].TotalRevenue.Equal(out[j].TotalRevenue) {
			return out[i].TotalRevenue.GreaterThan(out[j].TotalRevenue)
		}
		return out[i].ProductID < out[j].ProductID
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// byCategory ingreso y unidades por categoría de producto.
func byCategory(list []*entity.Sale) []dto.CategoryRevenueDTO {
	acc := map[string]*dto.CategoryRevenueDTO{}
	for _, s := range list {
		for _, it := range s.Items {
			c, ok := acc[it.Category]
			if !ok {
				c = &dto.CategoryRevenueDTO{Category: it.Category, Revenue: decimal.Zero}
				acc[it.Category] = c
			}
			c.Quantity += it.Quantity
			c.Revenue = c.Revenue.Add(it.Subtotal())
		}
	}
	out := make([]dto.CategoryRevenueDTO, 0, len(acc))
	for _, c := range acc {
		c.Revenue = c.Revenue.Round(2)
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Revenue.Equal(out[j].Revenue) {
			return out[i].Revenue.GreaterThan(out[j].Revenue)
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// byPayment ventas por medio de pago.
func byPayment(list []*entity.Sale) []dto.PaymentMethodDTO {
	acc := map[string]*dto.PaymentMethodDTO{}
	for _, s := range list {
		p, ok := acc[s.PaymentMethod]
		if !ok {
			p = &dto.PaymentMethodDTO{Method: s.PaymentMethod, Total: decimal.Zero}
			acc[s.PaymentMethod] = p
		}
		p.Count++
		p.Total = p.Total.Add(s.Total)
	}
	out := make([]dto.PaymentMethodDTO, 0, len(acc))
	for _, p := range acc {
		p.Total = p.Total.Round(2)
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].Method < out[j].Method
	})
	return out
}

// byDay ventas por día, en orden cronológico. Solo incluye días con ventas.
func byDay(list []*entity.Sale) []dto.DailySalesDTO {
	acc := map[string]*dto.DailySalesDTO{}
	for _, s := range list {
		key := s.CreatedAt.Format(dto.DateLayout)
		d, ok := acc[key]
		if !ok {
			d = &dto.DailySalesDTO{Date: key, Total: decimal.Zero}
			acc[key] = d
		}
		d.Count++
		d.Total = d.Total.Add(s.Total)
	}
	out := make([]dto.DailySalesDTO, 0, len(acc))
	for _, d := range acc {
		d.Total = d.Total.Round(2)
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
