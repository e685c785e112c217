package repository

import (
	"context"

	"github.com/jhoicas/PetShop-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer (DIP).
type CustomerRepository interface {
	Create(ctx context.Context, c *entity.Customer) error
	GetByID(ctx context.Context, id int64) (*entity.Customer, error)
	Update(ctx context.Context, c *entity.Customer) error
	List(ctx context.Context, search string, limit, offset int) ([]*entity.Customer, int, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}
