package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/PetShop-api/internal/domain/entity"
)

// ProductFilter criterios de listado de productos.
type ProductFilter struct {
	Search   string // nombre, sin distinguir mayúsculas
	Category string
	LowStock bool
	Limit    int
	Offset   int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// GetByIDForUpdate como GetByID pero bloquea la fila hasta el fin de la transacción.
	GetByIDForUpdate(ctx context.Context, id int64) (*entity.Product, error)
	GetByBarcode(ctx context.Context, barcode string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	Update(ctx context.Context, p *entity.Product) error
	// AdjustStock suma delta al stock. ErrInsufficientStock si el resultado fuese negativo.
	AdjustStock(ctx context.Context, id int64, delta int) error
	// UpdateCost fija el costo promedio (entradas de mercadería).
	UpdateCost(ctx context.Context, id int64, cost decimal.Decimal) error
	List(ctx context.Context, f ProductFilter) ([]*entity.Product, int, error)
	Delete(ctx context.Context, id int64) error
}
