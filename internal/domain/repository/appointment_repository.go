package repository

import (
	"context"
	"time"

	"github.com/jhoicas/PetShop-api/internal/domain/entity"
)

// AppointmentFilter criterios de listado de citas.
type AppointmentFilter struct {
	Date   *time.Time // día exacto
	Status entity.AppointmentStatus
	Limit  int
	Offset int
}

// AppointmentRepository define el puerto de persistencia para Appointment (DIP).
type AppointmentRepository interface {
	Create(ctx context.Context, a *entity.Appointment) error
	GetByID(ctx context.Context, id int64) (*entity.Appointment, error)
	Update(ctx context.Context, a *entity.Appointment) error
	List(ctx context.Context, f AppointmentFilter) ([]*entity.Appointment, int, error)
	Delete(ctx context.Context, id int64) error
}
