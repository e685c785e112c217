package repository

import (
	"context"
	"time"

	"github.com/jhoicas/PetShop-api/internal/domain/entity"
)

// ExpenseRepository define el puerto de persistencia para Expense (DIP).
type ExpenseRepository interface {
	Create(ctx context.Context, e *entity.Expense) error
	GetByID(ctx context.Context, id int64) (*entity.Expense, error)
	Update(ctx context.Context, e *entity.Expense) error
	// ListBetween gastos con fecha en [from, to], ordenados por fecha.
	ListBetween(ctx context.Context, from, to time.Time) ([]*entity.Expense, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Expense, int, error)
	Delete(ctx context.Context, id int64) error
}
