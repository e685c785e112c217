package memory

import (
	"context"

	"github.com/jhoicas/PetShop-api/internal/domain/entity"
	"github.com/jhoicas/PetShop-api/internal/domain/repository"
)

var _ repository.PetRepository = (*PetRepo)(nil)

// PetRepo mascotas en memoria.
type PetRepo struct {
	t *table[entity.Pet]
	cascade
}

// NewPetRepository construye el repositorio vacío.
func NewPetRepository() *PetRepo {
	return &PetRepo{t: newTable[entity.Pet](nil)}
}

func (r *PetRepo) Create(_ context.Context, p *entity.Pet) error {
	*p = r.t.insert(*p, func(v *entity.Pet, id int64) { v.ID = id }, func(v entity.Pet) int64 { return v.ID })
	return nil
}

func (r *PetRepo) GetByID(_ context.Context, id int64) (*entity.Pet, error) {
	p, ok := r.t.get(id)
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *PetRepo) Update(_ context.Context, p *entity.Pet) error {
	return r.t.replace(p.ID, *p)
}

func (r *PetRepo) List(_ context.Context, customerID int64, limit, offset int) ([]*entity.Pet, int, error) {
	rows := r.t.find(func(v entity.Pet) bool {
		return customerID <= 0 || v.CustomerID == customerID
	}, func(a, b entity.Pet) bool { return a.Name < b.Name })
	rows, total := page(rows, limit, offset)
	return ptrs(rows), total, nil
}

// Delete elimina la mascota; las citas que la referencian quedan sin pet_id.
func (r *PetRepo) Delete(_ context.Context, id int64) error {
	if err := r.t.remove(id); err != nil {
		return err
	}
	r.deleted(id)
	return nil
}

// deleteByCustomer borra las mascotas de un cliente eliminado.
func (r *PetRepo) deleteByCustomer(customerID int64) {
	for _, id := range r.t.removeWhere(func(v entity.Pet) bool { return v.CustomerID == customerID }) {
		r.deleted(id)
	}
}

func (r *PetRepo) Count(_ context.Context) (int, error) {
	return r.t.count(), nil
}
