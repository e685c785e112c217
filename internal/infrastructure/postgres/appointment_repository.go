package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/PetShop-api/internal/domain"
	"github.com/jhoicas/PetShop-api/internal/domain/entity"
	"github.com/jhoicas/PetShop-api/internal/domain/repository"
)

var _ repository.AppointmentRepository = (*AppointmentRepo)(nil)

const appointmentColumns = `id, date, time, service, pet_id, pet_name, customer_name, status, notes, created_at, updated_at`

// AppointmentRepo agenda de citas sobre PostgreSQL.
type AppointmentRepo struct {
	q Querier
}

func NewAppointmentRepository(q Querier) *AppointmentRepo {
	return &AppointmentRepo{q: q}
}

func scanAppointment(row pgx.Row) (*entity.Appointment, error) {
	var a entity.Appointment
	var status string
	if err := row.Scan(&a.ID, &a.Date, &a.Time, &a.Service, &a.PetID, &a.PetName, &a.CustomerName,
		&status, &a.Notes, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	a.Status = entity.AppointmentStatus(status)
	return &a, nil
}

func (r *AppointmentRepo) Create(ctx context.Context, a *entity.Appointment) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO appointments (date, time, service, pet_id, pet_name, customer_name, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		a.Date, a.Time, a.Service, a.PetID, a.PetName, a.CustomerName, string(a.Status), a.Notes, a.CreatedAt, a.UpdatedAt,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

func (r *AppointmentRepo) GetByID(ctx context.Context, id int64) (*entity.Appointment, error) {
	a, err := scanAppointment(r.q.QueryRow(ctx, `SELECT `+appointmentColumns+` FROM appointments WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return a, nil
}

func (r *AppointmentRepo) Update(ctx context.Context, a *entity.Appointment) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE appointments SET date = $2, time = $3, service = $4, pet_id = $5, pet_name = $6,
			customer_name = $7, status = $8, notes = $9, updated_at = $10
		WHERE id = $1`,
		a.ID, a.Date, a.Time, a.Service, a.PetID, a.PetName, a.CustomerName, string(a.Status), a.Notes, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update appointment: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List ordena por fecha y hora.
func (r *AppointmentRepo) List(ctx context.Context, f repository.AppointmentFilter) ([]*entity.Appointment, int, error) {
	var w filter
	if f.Date != nil {
		w.add("date = ?::date", f.Date.Format("2006-01-02"))
	}
	if f.Status != "" {
		w.add("status = ?", string(f.Status))
	}
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM appointments`+w.where(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count appointments: %w", err)
	}
	suffix, args := w.page(f.Limit, f.Offset)
	rows, err := r.q.Query(ctx, `SELECT `+appointmentColumns+` FROM appointments`+w.where()+` ORDER BY date, time`+suffix, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan appointment: %w", err)
		}
		list = append(list, a)
	}
	return list, total, rows.Err()
}

func (r *AppointmentRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
