// Package inventory mueve stock fuera del flujo de ventas: entradas de mercadería con costo
// promedio ponderado, ajustes manuales, kardex y sugerencias de reposición.
package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/PetShop-api/internal/application/dto"
	"github.com/jhoicas/PetShop-api/internal/application/ports"
	"github.com/jhoicas/PetShop-api/internal/application/usecase"
	"github.com/jhoicas/PetShop-api/internal/domain"
	"github.com/jhoicas/PetShop-api/internal/domain/entity"
	"github.com/jhoicas/PetShop-api/internal/domain/inventory"
	"github.com/jhoicas/PetShop-api/internal/domain/repository"
	"github.com/jhoicas/PetShop-api/pkg/logger"
)

// StockUseCase registra entradas y ajustes de stock de forma transaccional. Cada
// movimiento deja su asiento en el kardex dentro de la misma transacción.
type StockUseCase struct {
	txRunner  ports.TxRunner
	products  repository.ProductRepository
	movements repository.InventoryMovementRepository
	log       *logger.Logger
	now       func() time.Time
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(txRunner ports.TxRunner, products repository.ProductRepository, movements repository.InventoryMovementRepository, log *logger.Logger) *StockUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &StockUseCase{
		txRunner:  txRunner,
		products:  products,
		movements: movements,
		log:       log.Component("inventory"),
		now:       time.Now,
	}
}

// Restock registra una entrada de mercadería: suma Quantity al stock y recalcula el costo
// promedio ponderado con UnitCost. Devuelve el producto actualizado o nil si no existe.
func (uc *StockUseCase) Restock(ctx context.Context, actor entity.User, productID int64, in dto.RestockRequest) (*dto.ProductResponse, error) {
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity debe ser mayor que cero", domain.ErrInvalidInput)
	}
	if in.UnitCost.IsNegative() {
		return nil, fmt.Errorf("%w: unit_cost no puede ser negativo", domain.ErrInvalidInput)
	}

	var out *dto.ProductResponse
	err := uc.txRunner.Run(ctx, func(products repository.ProductRepository, _ repository.SaleRepository, movements repository.InventoryMovementRepository) error {
		p, err := products.GetByIDForUpdate(ctx, productID)
		if err != nil {
			return err
		}
		if p == nil {
			return nil
		}
		newCost := inventory.WeightedAverageCost(p.Stock, p.Cost, in.Quantity, in.UnitCost)
		if err := products.AdjustStock(ctx, p.ID, in.Quantity); err != nil {
			return err
		}
		if err := products.UpdateCost(ctx, p.ID, newCost); err != nil {
			return err
		}
		mov := &entity.InventoryMovement{
			ProductID: p.ID,
			Type:      entity.MovementTypeIN,
			Quantity:  in.Quantity,
			UnitCost:  in.UnitCost,
			CreatedBy: actor.ID,
			CreatedAt: uc.now(),
		}
		mov.TotalCost = inventory.TotalCost(mov.Quantity, mov.UnitCost)
		if err := movements.Create(ctx, mov); err != nil {
			return err
		}
		p.Stock += in.Quantity
		p.Cost = newCost
		out = usecase.ToProductResponse(p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("restock producto %d: %w", productID, err)
	}
	if out != nil {
		uc.log.Info().Int64("product_id", productID).Int("quantity", in.Quantity).Str("cost", out.Cost.String()).Int64("user_id", actor.ID).Msg("entrada de mercadería")
	}
	return out, nil
}

// Adjust corrige el stock en Delta unidades (conteo físico, merma). El costo no cambia.
// El stock resultante no puede ser negativo.
func (uc *StockUseCase) Adjust(ctx context.Context, actor entity.User, productID int64, in dto.AdjustStockRequest) (*dto.ProductResponse, error) {
	if in.Delta == 0 {
		return nil, fmt.Errorf("%w: delta no puede ser cero", domain.ErrInvalidInput)
	}
	var out *dto.ProductResponse
	err := uc.txRunner.Run(ctx, func(products repository.ProductRepository, _ repository.SaleRepository, movements repository.InventoryMovementRepository) error {
		p, err := products.GetByIDForUpdate(ctx, productID)
		if err != nil {
			return err
		}
		if p == nil {
			return nil
		}
		if err := products.AdjustStock(ctx, p.ID, in.Delta); err != nil {
			return err
		}
		mov := &entity.InventoryMovement{
			ProductID: p.ID,
			Type:      entity.MovementTypeADJUSTMENT,
			Quantity:  in.Delta,
			UnitCost:  p.Cost,
			Reason:    in.Reason,
			CreatedBy: actor.ID,
			CreatedAt: uc.now(),
		}
		mov.TotalCost = inventory.TotalCost(mov.Quantity, mov.UnitCost)
		if err := movements.Create(ctx, mov); err != nil {
			return err
		}
		p.Stock += in.Delta
		out = usecase.ToProductResponse(p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ajuste producto %d: %w", productID, err)
	}
	if out != nil {
		uc.log.Info().Int64("product_id", productID).Int("delta", in.Delta).Str("reason", in.Reason).Int64("user_id", actor.ID).Msg("ajuste de stock")
	}
	return out, nil
}

// Movements devuelve el kardex de un producto o nil si el producto no existe.
func (uc *StockUseCase) Movements(ctx context.Context, productID int64, in dto.MovementFilter) (*dto.MovementListResponse, error) {
	p, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	var from, to *time.Time
	if in.From != "" {
		t, err := time.ParseInLocation(dto.DateLayout, in.From, time.Local)
		if err != nil {
			return nil, fmt.Errorf("%w: from debe tener formato YYYY-MM-DD", domain.ErrInvalidInput)
		}
		from = &t
	}
	if in.To != "" {
		t, err := time.ParseInLocation(dto.DateLayout, in.To, time.Local)
		if err != nil {
			return nil, fmt.Errorf("%w: to debe tener formato YYYY-MM-DD", domain.ErrInvalidInput)
		}
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		to = &t
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, fmt.Errorf("%w: from posterior a to", domain.ErrInvalidInput)
	}
	page := in.PageRequest
	page.DefaultPage()

	list, total, err := uc.movements.ListByProduct(ctx, productID, from, to, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, ToMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// ToMovementResponse mapea un asiento del kardex a su DTO.
func ToMovementResponse(m *entity.InventoryMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Type:      m.Type,
		Quantity:  m.Quantity,
		UnitCost:  m.UnitCost,
		TotalCost: m.TotalCost,
		SaleID:    m.SaleID,
		Reason:    m.Reason,
		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt,
	}
}
