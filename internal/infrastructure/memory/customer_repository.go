package memory

import (
	"context"
	"strings"

	"github.com/jhoicas/PetShop-api/internal/domain/entity"
	"github.com/jhoicas/PetShop-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo clientes en memoria.
type CustomerRepo struct {
	t *table[entity.Customer]
	cascade
}

// NewCustomerRepository construye el repositorio vacío.
func NewCustomerRepository() *CustomerRepo {
	return &CustomerRepo{t: newTable(func(c entity.Customer) entity.Customer {
		c.BirthDate = clonePtr(c.BirthDate)
		return c
	})}
}

func (r *CustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	*c = r.t.insert(*c, func(v *entity.Customer, id int64) { v.ID = id }, func(v entity.Customer) int64 { return v.ID })
	return nil
}

func (r *CustomerRepo) GetByID(_ context.Context, id int64) (*entity.Customer, error) {
	c, ok := r.t.get(id)
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *CustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	return r.t.replace(c.ID, *c)
}

// List busca por nombre, teléfono o email.
func (r *CustomerRepo) List(_ context.Context, search string, limit, offset int) ([]*entity.Customer, int, error) {
	q := strings.ToLower(search)
	rows := r.t.find(func(v entity.Customer) bool {
		if q == "" {
			return true
		}
		return strings.Contains(strings.ToLower(v.Name), q) ||
			strings.Contains(strings.ToLower(v.Email), q) ||
			strings.Contains(v.Phone, q)
	}, func(a, b entity.Customer) bool { return a.Name < b.Name })
	rows, total := page(rows, limit, offset)
	return ptrs(rows), total, nil
}

// Delete elimina el cliente y, en cascada, sus mascotas.
func (r *CustomerRepo) Delete(_ context.Context, id int64) error {
	if err := r.t.remove(id); err != nil {
		return err
	}
	r.deleted(id)
	return nil
}

func (r *CustomerRepo) Count(_ context.Context) (int, error) {
	return r.t.count(), nil
}
