package repository

import (
	"context"

	"github.com/jhoicas/PetShop-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para el personal (DIP).
type UserRepository interface {
	Create(ctx context.Context, u *entity.StaffUser) error
	GetByID(ctx context.Context, id int64) (*entity.StaffUser, error)
	GetByEmail(ctx context.Context, email string) (*entity.StaffUser, error)
	GetByUsername(ctx context.Context, username string) (*entity.StaffUser, error)
	Update(ctx context.Context, u *entity.StaffUser) error
	List(ctx context.Context, limit, offset int) ([]*entity.StaffUser, int, error)
	Delete(ctx context.Context, id int64) error
}
