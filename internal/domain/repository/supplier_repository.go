package repository

import (
	"context"

	"github.com/jhoicas/PetShop-api/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	Create(ctx context.Context, s *entity.Supplier) error
	GetByID(ctx context.Context, id int64) (*entity.Supplier, error)
	Update(ctx context.Context, s *entity.Supplier) error
	List(ctx context.Context, limit, offset int) ([]*entity.Supplier, int, error)
	Delete(ctx context.Context, id int64) error
}
