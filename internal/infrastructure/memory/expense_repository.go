package memory

import (
	"context"
	"time"

	"github.com/jhoicas/PetShop-api/internal/domain/entity"
	"github.com/jhoicas/PetShop-api/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo gastos en memoria.
type ExpenseRepo struct {
	t *table[entity.Expense]
}

// NewExpenseRepository construye el repositorio vacío.
func NewExpenseRepository() *ExpenseRepo {
	return &ExpenseRepo{t: newTable[entity.Expense](nil)}
}

func (r *ExpenseRepo) Create(_ context.Context, e *entity.Expense) error {
	*e = r.t.insert(*e, func(v *entity.Expense, id int64) { v.ID = id }, func(v entity.Expense) int64 { return v.ID })
	return nil
}

func (r *ExpenseRepo) GetByID(_ context.Context, id int64) (*entity.Expense, error) {
	e, ok := r.t.get(id)
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r *ExpenseRepo) Update(_ context.Context, e *entity.Expense) error {
	return r.t.replace(e.ID, *e)
}

func (r *ExpenseRepo) ListBetween(_ context.Context, from, to time.Time) ([]*entity.Expense, error) {
	rows := r.t.find(func(v entity.Expense) bool {
		return !v.Date.Before(from) && !v.Date.After(to)
	}, func(a, b entity.Expense) bool { return a.Date.Before(b.Date) })
	return ptrs(rows), nil
}

// List más recientes primero.
func (r *ExpenseRepo) List(_ context.Context, limit, offset int) ([]*entity.Expense, int, error) {
	rows := r.t.find(nil, func(a, b entity.Expense) bool {
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		return a.ID > b.ID
	})
	rows, total := page(rows, limit, offset)
	return ptrs(rows), total, nil
}

func (r *ExpenseRepo) Delete(_ context.Context, id int64) error {
	return r.t.remove(id)
}
