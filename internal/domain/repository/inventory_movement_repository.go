package repository

import (
	"context"
	"time"

	"github.com/jhoicas/PetShop-api/internal/domain/entity"
)

// InventoryMovementRepository kardex de stock. Solo se agregan asientos.
type InventoryMovementRepository interface {
	Create(ctx context.Context, m *entity.InventoryMovement) error
	// ListByProduct movimientos de un producto, los más recientes primero. from/to opcionales.
	ListByProduct(ctx context.Context, productID int64, from, to *time.Time, limit, offset int) ([]*entity.InventoryMovement, int, error)
}
