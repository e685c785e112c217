package memory

import (
	"context"
	"time"

	"github.com/jhoicas/PetShop-api/internal/domain/entity"
	"github.com/jhoicas/PetShop-api/internal/domain/repository"
)

var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

// InventoryMovementRepo kardex en memoria.
type InventoryMovementRepo struct {
	t *table[entity.InventoryMovement]
}

// NewInventoryMovementRepository construye el repositorio vacío.
func NewInventoryMovementRepository() *InventoryMovementRepo {
	return &InventoryMovementRepo{t: newTable(func(m entity.InventoryMovement) entity.InventoryMovement {
		m.SaleID = clonePtr(m.SaleID)
		return m
	})}
}

func (r *InventoryMovementRepo) Create(_ context.Context, m *entity.InventoryMovement) error {
	*m = r.t.insert(*m, func(v *entity.InventoryMovement, id int64) { v.ID = id }, func(v entity.InventoryMovement) int64 { return v.ID })
	return nil
}

// deleteByProduct borra el kardex de un producto eliminado.
func (r *InventoryMovementRepo) deleteByProduct(productID int64) {
	r.t.removeWhere(func(v entity.InventoryMovement) bool { return v.ProductID == productID })
}

func (r *InventoryMovementRepo) ListByProduct(_ context.Context, productID int64, from, to *time.Time, limit, offset int) ([]*entity.InventoryMovement, int, error) {
	rows := r.t.find(func(v entity.InventoryMovement) bool {
		if v.ProductID != productID {
			return false
		}
		if from != nil && v.CreatedAt.Before(*from) {
			return false
		}
		return to == nil || !v.CreatedAt.After(*to)
	}, func(a, b entity.InventoryMovement) bool {
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})
	rows, total := page(rows, limit, offset)
	return ptrs(rows), total, nil
}
