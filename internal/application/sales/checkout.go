// Package sales implementa el punto de venta: checkout transaccional y consulta de ventas.
package sales

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/PetShop-api/internal/application/dto"
	"github.com/jhoicas/PetShop-api/internal/application/ports"
	"github.com/jhoicas/PetShop-api/internal/domain"
	"github.com/jhoicas/PetShop-api/internal/domain/entity"
	"github.com/jhoicas/PetShop-api/internal/domain/inventory"
	"github.com/jhoicas/PetShop-api/internal/domain/repository"
	"github.com/jhoicas/PetShop-api/pkg/logger"
)

var paymentMethods = map[string]bool{
	entity.PaymentCash:       true,
	entity.PaymentCreditCard: true,
	entity.PaymentDebitCard:  true,
	entity.PaymentPix:        true,
}

// CheckoutUseCase registra ventas. Stock, venta y kardex se confirman en la misma transacción.
type CheckoutUseCase struct {
	txRunner ports.TxRunner
	sales    repository.SaleRepository
	log      *logger.Logger
	now      func() time.Time
}

// NewCheckoutUseCase construye el caso de uso.
func NewCheckoutUseCase(txRunner ports.TxRunner, sales repository.SaleRepository, log *logger.Logger) *CheckoutUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &CheckoutUseCase{txRunner: txRunner, sales: sales, log: log.Component("checkout"), now: time.Now}
}

// line línea del carrito ya resuelta contra el catálogo.
type line struct {
	product  *entity.Product
	quantity int
}

// Checkout cobra el carrito a nombre de cashier.
//
// Las líneas del mismo producto se fusionan; la cantidad fusionada no puede superar el stock.
// Precio y costo se congelan desde el producto. Cualquier error revierte el descuento de stock.
func (uc *CheckoutUseCase) Checkout(ctx context.Context, cashier entity.User, in dto.CheckoutRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if !paymentMethods[in.PaymentMethod] {
		return nil, fmt.Errorf("%w: medio de pago %q", domain.ErrInvalidInput, in.PaymentMethod)
	}
	for i, it := range in.Items {
		if it.Quantity < 1 {
			return nil, fmt.Errorf("%w: items[%d].quantity debe ser >= 1", domain.ErrInvalidInput, i)
		}
		if it.ProductID <= 0 && strings.TrimSpace(it.Barcode) == "" {
			return nil, fmt.Errorf("%w: items[%d] sin product_id ni barcode", domain.ErrInvalidInput, i)
		}
	}

	sale := &entity.Sale{
		CashierID:     cashier.ID,
		CashierName:   cashier.DisplayName,
		CustomerName:  strings.TrimSpace(in.CustomerName),
		PaymentMethod: in.PaymentMethod,
	}
	err := uc.txRunner.Run(ctx, func(products repository.ProductRepository, sales repository.SaleRepository, movements repository.InventoryMovementRepository) error {
		lines, err := resolve(ctx, products, in.Items)
		if err != nil {
			return err
		}
		total := decimal.Zero
		items := make([]entity.SaleItem, 0, len(lines))
		for _, l := range lines {
			if l.quantity > l.product.Stock {
				return fmt.Errorf("%w: %s (disponible %d, pedido %d)", domain.ErrInsufficientStock, l.product.Name, l.product.Stock, l.quantity)
			}
			if err := products.AdjustStock(ctx, l.product.ID, -l.quantity); err != nil {
				return fmt.Errorf("descontar %s: %w", l.product.SKU, err)
			}
			it := entity.SaleItem{
				ProductID: l.product.ID,
				Name:      l.product.Name,
				Category:  l.product.Category,
				Quantity:  l.quantity,
				UnitPrice: l.product.Price,
				UnitCost:  l.product.Cost,
			}
			total = total.Add(it.Subtotal())
			items = append(items, it)
		}
		sale.Items = items
		sale.Total = total.Round(2)
		sale.CreatedAt = uc.now()
		if err := sales.Create(ctx, sale); err != nil {
			return err
		}
		for _, it := range sale.Items {
			mov := &entity.InventoryMovement{
				ProductID: it.ProductID,
				Type:      entity.MovementTypeOUT,
				Quantity:  -it.Quantity,
				UnitCost:  it.UnitCost,
				TotalCost: inventory.TotalCost(-it.Quantity, it.UnitCost),
				SaleID:    &sale.ID,
				CreatedBy: cashier.ID,
				CreatedAt: sale.CreatedAt,
			}
			if err := movements.Create(ctx, mov); err != nil {
				return fmt.Errorf("kardex %d: %w", it.ProductID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}
	uc.log.Info().Int64("sale_id", sale.ID).Int64("cashier_id", cashier.ID).Str("total", sale.Total.String()).Str("payment", sale.PaymentMethod).Msg("venta registrada")
	return ToSaleResponse(sale), nil
}

// resolve busca y bloquea cada producto por id o código de barras y fusiona las líneas
// repetidas conservando el orden de la primera aparición.
func resolve(ctx context.Context, products repository.ProductRepository, items []dto.CheckoutItemRequest) ([]line, error) {
	out := make([]line, 0, len(items))
	index := make(map[int64]int, len(items))
	for _, it := range items {
		var (
			p   *entity.Product
			err error
			ref string
		)
		if it.ProductID > 0 {
			ref = fmt.Sprintf("id %d", it.ProductID)
			p, err = products.GetByIDForUpdate(ctx, it.ProductID)
		} else {
			ref = "código " + strings.TrimSpace(it.Barcode)
			p, err = products.GetByBarcode(ctx, strings.TrimSpace(it.Barcode))
		}
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, ref)
		}
		if i, ok := index[p.ID]; ok {
			out[i].quantity += it.Quantity
			continue
		}
		if it.ProductID <= 0 {
			// el código de barras solo resuelve el id; el bloqueo se toma por id
			if p, err = products.GetByIDForUpdate(ctx, p.ID); err != nil {
				return nil, err
			}
			if p == nil {
				return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, ref)
			}
		}
		index[p.ID] = len(out)
		out = append(out, line{product: p, quantity: it.Quantity})
	}
	return out, nil
}

// GetByID obtiene una venta por ID.
func (uc *CheckoutUseCase) GetByID(ctx context.Context, id int64) (*dto.SaleResponse, error) {
	s, err := uc.sales.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	return ToSaleResponse(s), nil
}

// ListFilter filtros de listado de ventas. Fechas YYYY-MM-DD, to inclusive.
type ListFilter struct {
	From      string `query:"from"`
	To        string `query:"to"`
	CashierID int64  `query:"cashier_id"`
	dto.PageRequest
}

// List lista ventas, las más recientes primero.
func (uc *CheckoutUseCase) List(ctx context.Context, in ListFilter) (*dto.SaleListResponse, error) {
	f := repository.SaleFilter{CashierID: in.CashierID}
	if in.From != "" {
		t, err := time.ParseInLocation(dto.DateLayout, in.From, time.Local)
		if err != nil {
			return nil, fmt.Errorf("%w: from debe tener formato YYYY-MM-DD", domain.ErrInvalidInput)
		}
		f.From = t
	}
	if in.To != "" {
		t, err := time.ParseInLocation(dto.DateLayout, in.To, time.Local)
		if err != nil {
			return nil, fmt.Errorf("%w: to debe tener formato YYYY-MM-DD", domain.ErrInvalidInput)
		}
		f.To = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	page := in.PageRequest
	page.DefaultPage()
	f.Limit, f.Offset = page.Limit, page.Offset

	list, total, err := uc.sales.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *ToSaleResponse(s))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// ToSaleResponse mapea una venta a su DTO.
func ToSaleResponse(s *entity.Sale) *dto.SaleResponse {
	items := make([]dto.SaleItemDTO, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemDTO{
			ProductID: it.ProductID,
			Name:      it.Name,
			Category:  it.Category,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			UnitCost:  it.UnitCost,
			Subtotal:  it.Subtotal().Round(2),
		})
	}
	return &dto.SaleResponse{
		ID:            s.ID,
		CashierID:     s.CashierID,
		CashierName:   s.CashierName,
		CustomerName:  s.CustomerName,
		Items:         items,
		Total:         s.Total,
		PaymentMethod: s.PaymentMethod,
		CreatedAt:     s.CreatedAt,
	}
}
