package memory

import (
	"context"

	"github.com/jhoicas/PetShop-api/internal/domain/entity"
	"github.com/jhoicas/PetShop-api/internal/domain/repository"
)

var _ repository.AppointmentRepository = (*AppointmentRepo)(nil)

// AppointmentRepo citas en memoria.
type AppointmentRepo struct {
	t *table[entity.Appointment]
}

// NewAppointmentRepository construye el repositorio vacío.
func NewAppointmentRepository() *AppointmentRepo {
	return &AppointmentRepo{t: newTable(func(a entity.Appointment) entity.Appointment {
		a.PetID = clonePtr(a.PetID)
		return a
	})}
}

func (r *AppointmentRepo) Create(_ context.Context, a *entity.Appointment) error {
	*a = r.t.insert(*a, func(v *entity.Appointment, id int64) { v.ID = id }, func(v entity.Appointment) int64 { return v.ID })
	return nil
}

func (r *AppointmentRepo) GetByID(_ context.Context, id int64) (*entity.Appointment, error) {
	a, ok := r.t.get(id)
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *AppointmentRepo) Update(_ context.Context, a *entity.Appointment) error {
	return r.t.replace(a.ID, *a)
}

// List ordena por fecha y hora.
func (r *AppointmentRepo) List(_ context.Context, f repository.AppointmentFilter) ([]*entity.Appointment, int, error) {
	rows := r.t.find(func(v entity.Appointment) bool {
		if f.Date != nil && !sameDay(v.Date, *f.Date) {
			return false
		}
		return f.Status == "" || v.Status == f.Status
	}, func(a, b entity.Appointment) bool {
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return a.Time < b.Time
	})
	rows, total := page(rows, f.Limit, f.Offset)
	return ptrs(rows), total, nil
}

func (r *AppointmentRepo) Delete(_ context.Context, id int64) error {
	return r.t.remove(id)
}

// clearPet desvincula las citas de una mascota eliminada; el nombre se conserva.
func (r *AppointmentRepo) clearPet(petID int64) {
	r.t.updateWhere(func(v entity.Appointment) bool {
		return v.PetID != nil && *v.PetID == petID
	}, func(v *entity.Appointment) { v.PetID = nil })
}
