package memory

import (
	"context"
	"slices"
	"time"

	"github.com/jhoicas/PetShop-api/internal/domain/entity"
	"github.com/jhoicas/PetShop-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo ventas en memoria.
type SaleRepo struct {
	t *table[entity.Sale]
}

// NewSaleRepository construye el repositorio vacío.
func NewSaleRepository() *SaleRepo {
	return &SaleRepo{t: newTable(func(s entity.Sale) entity.Sale {
		s.Items = slices.Clone(s.Items)
		return s
	})}
}

func (r *SaleRepo) Create(_ context.Context, s *entity.Sale) error {
	*s = r.t.insert(*s, func(v *entity.Sale, id int64) { v.ID = id }, func(v entity.Sale) int64 { return v.ID })
	return nil
}

func (r *SaleRepo) GetByID(_ context.Context, id int64) (*entity.Sale, error) {
	s, ok := r.t.get(id)
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *SaleRepo) List(_ context.Context, f repository.SaleFilter) ([]*entity.Sale, int, error) {
	rows := r.t.find(func(v entity.Sale) bool {
		if !f.From.IsZero() && v.CreatedAt.Before(f.From) {
			return false
		}
		if !f.To.IsZero() && v.CreatedAt.After(f.To) {
			return false
		}
		return f.CashierID == 0 || v.CashierID == f.CashierID
	}, newestFirst)
	rows, total := page(rows, f.Limit, f.Offset)
	return ptrs(rows), total, nil
}

func (r *SaleRepo) ListBetween(_ context.Context, from, to time.Time) ([]*entity.Sale, error) {
	rows := r.t.find(func(v entity.Sale) bool {
		return !v.CreatedAt.Before(from) && !v.CreatedAt.After(to)
	}, newestFirst)
	return ptrs(rows), nil
}

func newestFirst(a, b entity.Sale) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}
