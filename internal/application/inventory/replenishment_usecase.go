package inventory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/PetShop-api/internal/application/dto"
	"github.com/jhoicas/PetShop-api/internal/domain/repository"
)

// ReplenishmentUseCase genera la lista de reposición a partir de los productos con stock bajo.
// Prioriza por unidades vendidas en los últimos 30 días.
type ReplenishmentUseCase struct {
	products repository.ProductRepository
	sales    repository.SaleRepository
	now      func() time.Time
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(products repository.ProductRepository, sales repository.SaleRepository) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{products: products, sales: sales, now: time.Now}
}

// GenerateReplenishmentList devuelve los productos con stock <= mínimo con la cantidad
// sugerida para volver al stock ideal (2 x mínimo).
func (uc *ReplenishmentUseCase) GenerateReplenishmentList(ctx context.Context) ([]dto.ReplenishmentSuggestionDTO, error) {
	// 1. Productos en stock bajo (todos, sin paginar)
	low, _, err := uc.products.List(ctx, repository.ProductFilter{LowStock: true})
	if err != nil {
		return nil, err
	}
	if len(low) == 0 {
		return []dto.ReplenishmentSuggestionDTO{}, nil
	}

	// 2. Unidades vendidas por producto en los últimos 30 días
	end := uc.now()
	sales, err := uc.sales.ListBetween(ctx, end.AddDate(0, 0, -30), end)
	if err != nil {
		return nil, err
	}
	sold := make(map[int64]int)
	for _, s := range sales {
		for _, it := range s.Items {
			sold[it.ProductID] += it.Quantity
		}
	}

	// 3. Sugerencias
	suggestions := make([]dto.ReplenishmentSuggestionDTO, 0, len(low))
	for _, p := range low {
		ideal := p.MinStock * 2
		qty := ideal - p.Stock
		if qty < 0 {
			qty = 0
		}
		suggestions = append(suggestions, dto.ReplenishmentSuggestionDTO{
			ProductID:          p.ID,
			SKU:                p.SKU,
			ProductName:        p.Name,
			SupplierID:         p.SupplierID,
			CurrentStock:       p.Stock,
			MinStock:           p.MinStock,
			IdealStock:         ideal,
			SuggestedOrderQty:  qty,
			UnitCost:           p.Cost,
			EstimatedOrderCost: p.Cost.Mul(decimal.NewFromInt(int64(qty))).Round(2),
			UnitsSoldLast30d:   sold[p.ID],
		})
	}

	// 4. Ordenar: más vendidos primero, luego mayor déficit bajo el mínimo
	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if a.UnitsSoldLast30d != b.UnitsSoldLast30d {
			return a.UnitsSoldLast30d > b.UnitsSoldLast30d
		}
		return a.MinStock-a.CurrentStock > b.MinStock-b.CurrentStock
	})

	// 5. Prioridad (1 = más urgente)
	for i := range suggestions {
		suggestions[i].Priority = i + 1
	}
	return suggestions, nil
}
