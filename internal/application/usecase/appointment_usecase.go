package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/PetShop-api/internal/application/dto"
	"github.com/jhoicas/PetShop-api/internal/domain"
	"github.com/jhoicas/PetShop-api/internal/domain/entity"
	"github.com/jhoicas/PetShop-api/internal/domain/repository"
)

// AppointmentUseCase agenda de servicios. Las citas nacen pendientes y avanzan con ChangeStatus.
type AppointmentUseCase struct {
	repo repository.AppointmentRepository
	pets repository.PetRepository
}

// NewAppointmentUseCase construye el caso de uso.
func NewAppointmentUseCase(repo repository.AppointmentRepository, pets repository.PetRepository) *AppointmentUseCase {
	return &AppointmentUseCase{repo: repo, pets: pets}
}

// Create agenda una cita en estado pending.
func (uc *AppointmentUseCase) Create(ctx context.Context, in dto.AppointmentRequest) (*dto.AppointmentResponse, error) {
	now := time.Now()
	a := &entity.Appointment{Status: entity.AppointmentPending, CreatedAt: now}
	if err := uc.apply(ctx, a, in, now); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return toAppointmentResponse(a), nil
}

// GetByID obtiene una cita por ID.
func (uc *AppointmentUseCase) GetByID(ctx context.Context, id int64) (*dto.AppointmentResponse, error) {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, nil
	}
	return toAppointmentResponse(a), nil
}

// Update edita fecha, servicio y datos de la cita. El estado no cambia.
func (uc *AppointmentUseCase) Update(ctx context.Context, id int64, in dto.AppointmentRequest) (*dto.AppointmentResponse, error) {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, nil
	}
	if err := uc.apply(ctx, a, in, time.Now()); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return toAppointmentResponse(a), nil
}

// ChangeStatus aplica una transición de estado.
// pending -> confirmed|cancelled, confirmed -> completed|cancelled; completed y cancelled son terminales.
func (uc *AppointmentUseCase) ChangeStatus(ctx context.Context, id int64, status string) (*dto.AppointmentResponse, error) {
	next := entity.AppointmentStatus(status)
	if !next.Valid() {
		return nil, fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, status)
	}
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, nil
	}
	if !a.Status.CanTransition(next) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, a.Status, next)
	}
	a.Status = next
	a.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return toAppointmentResponse(a), nil
}

// List lista citas; date (YYYY-MM-DD) y status son opcionales.
func (uc *AppointmentUseCase) List(ctx context.Context, date, status string, limit, offset int) (*dto.AppointmentListResponse, error) {
	d, err := parseOptionalDate("date", date)
	if err != nil {
		return nil, err
	}
	st := entity.AppointmentStatus(strings.TrimSpace(status))
	if st != "" && !st.Valid() {
		return nil, fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, status)
	}
	limit, offset = normalizePage(limit, offset)
	list, total, err := uc.repo.List(ctx, repository.AppointmentFilter{Date: d, Status: st, Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	items := make([]dto.AppointmentResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAppointmentResponse(a))
	}
	return &dto.AppointmentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// Delete elimina una cita.
func (uc *AppointmentUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// apply copia la entrada sobre a. Si viene pet_id, la mascota debe existir y su nombre
// completa pet_name cuando llega vacío.
func (uc *AppointmentUseCase) apply(ctx context.Context, a *entity.Appointment, in dto.AppointmentRequest, now time.Time) error {
	d, err := parseOptionalDate("date", in.Date)
	if err != nil {
		return err
	}
	if d == nil {
		return fmt.Errorf("%w: date es obligatorio", domain.ErrInvalidInput)
	}
	if _, err := time.Parse("15:04", in.Time); err != nil {
		return fmt.Errorf("%w: time debe tener formato HH:MM", domain.ErrInvalidInput)
	}
	petName := strings.TrimSpace(in.PetName)
	if in.PetID != nil {
		pet, err := uc.pets.GetByID(ctx, *in.PetID)
		if err != nil {
			return err
		}
		if pet == nil {
			return fmt.Errorf("%w: mascota %d no existe", domain.ErrInvalidInput, *in.PetID)
		}
		if petName == "" {
			petName = pet.Name
		}
	}
	a.Date = *d
	a.Time = in.Time
	a.Service = strings.TrimSpace(in.Service)
	a.PetID = in.PetID
	a.PetName = petName
	a.CustomerName = strings.TrimSpace(in.CustomerName)
	a.Notes = in.Notes
	a.UpdatedAt = now
	return nil
}

func toAppointmentResponse(a *entity.Appointment) *dto.AppointmentResponse {
	return &dto.AppointmentResponse{
		ID:           a.ID,
		Date:         a.Date.Format(dto.DateLayout),
		Time:         a.Time,
		Service:      a.Service,
		PetID:        a.PetID,
		PetName:      a.PetName,
		CustomerName: a.CustomerName,
		Status:       string(a.Status),
		Notes:        a.Notes,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

// ToAppointmentResponse expone el mapeo para el dashboard.
func ToAppointmentResponse(a *entity.Appointment) *dto.AppointmentResponse {
	return toAppointmentResponse(a)
}
