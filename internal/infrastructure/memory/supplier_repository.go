package memory

import (
	"context"

	"github.com/jhoicas/PetShop-api/internal/domain/entity"
	"github.com/jhoicas/PetShop-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo proveedores en memoria.
type SupplierRepo struct {
	t *table[entity.Supplier]
	cascade
}

// NewSupplierRepository construye el repositorio vacío.
func NewSupplierRepository() *SupplierRepo {
	return &SupplierRepo{t: newTable[entity.Supplier](nil)}
}

func (r *SupplierRepo) Create(_ context.Context, s *entity.Supplier) error {
	*s = r.t.insert(*s, func(v *entity.Supplier, id int64) { v.ID = id }, func(v entity.Supplier) int64 { return v.ID })
	return nil
}

func (r *SupplierRepo) GetByID(_ context.Context, id int64) (*entity.Supplier, error) {
	s, ok := r.t.get(id)
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *SupplierRepo) Update(_ context.Context, s *entity.Supplier) error {
	return r.t.replace(s.ID, *s)
}

func (r *SupplierRepo) List(_ context.Context, limit, offset int) ([]*entity.Supplier, int, error) {
	rows := r.t.find(nil, func(a, b entity.Supplier) bool { return a.Name < b.Name })
	rows, total := page(rows, limit, offset)
	return ptrs(rows), total, nil
}

// Delete elimina el proveedor; sus productos quedan sin supplier_id.
func (r *SupplierRepo) Delete(_ context.Context, id int64) error {
	if err := r.t.remove(id); err != nil {
		return err
	}
	r.deleted(id)
	return nil
}
