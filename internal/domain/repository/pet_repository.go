package repository

import (
	"context"

	"github.com/jhoicas/PetShop-api/internal/domain/entity"
)

// PetRepository define el puerto de persistencia para Pet (DIP).
type PetRepository interface {
	Create(ctx context.Context, p *entity.Pet) error
	GetByID(ctx context.Context, id int64) (*entity.Pet, error)
	Update(ctx context.Context, p *entity.Pet) error
	// List filtra por cliente si customerID > 0.
	List(ctx context.Context, customerID int64, limit, offset int) ([]*entity.Pet, int, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}
