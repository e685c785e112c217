package ports

import (
	"context"

	"github.com/jhoicas/PetShop-api/internal/domain/repository"
)

// TxFunc recibe los repositorios atados a la transacción en curso.
type TxFunc func(
	products repository.ProductRepository,
	sales repository.SaleRepository,
	movements repository.InventoryMovementRepository,
) error

// TxRunner ejecuta fn dentro de una transacción, pasando repositorios atados a esa tx.
// Si fn devuelve error se revierte todo: stock, venta y kardex se confirman juntos o no se confirman.
type TxRunner interface {
	Run(ctx context.Context, fn TxFunc) error
}
